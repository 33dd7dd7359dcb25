package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de evento del historial de movimientos.
const (
	EventReceipt    = "receipt"
	EventDelivery   = "delivery"
	EventTransfer   = "transfer"
	EventAdjustment = "adjustment"
)

// MoveHistory registro append-only de un movimiento de inventario.
// Los punteros son FKs opcionales según el tipo de evento.
type MoveHistory struct {
	ID                int64
	Reference         string
	Status            string
	EventType         string
	Quantity          decimal.Decimal
	Date              time.Time
	ContactID         *int64
	FromWarehouseID   *int64
	ToWarehouseID     *int64
	FromLocationID    *int64
	ToLocationID      *int64
	ProductID         int64
	ResponsibleUserID *int64
	CreatedAt         time.Time
}

// MoveHistoryView fila del listado con nombres para mostrar.
type MoveHistoryView struct {
	ID                  int64
	Reference           string
	Status              string
	EventType           string
	Quantity            decimal.Decimal
	Date                time.Time
	CreatedAt           time.Time
	ContactName         string
	FromWarehouse       string
	ToWarehouse         string
	FromLocation        string
	ToLocation          string
	ProductName         string
	ProductSKU          string
	ResponsibleUserName string
}
