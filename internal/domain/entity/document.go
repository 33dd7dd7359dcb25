package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentKind distingue entregas (salidas) de recepciones (entradas).
type DocumentKind string

const (
	KindDelivery DocumentKind = "delivery"
	KindReceipt  DocumentKind = "receipt"
)

// Direction etiqueta de dirección usada en la referencia (WH/OUT/001, WH/IN/001).
type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

// Direction devuelve la etiqueta de dirección del tipo de documento.
func (k DocumentKind) Direction() Direction {
	if k == KindReceipt {
		return DirectionIn
	}
	return DirectionOut
}

// EventType tipo de evento que el documento deja en move_history al validarse.
func (k DocumentKind) EventType() string {
	if k == KindReceipt {
		return EventReceipt
	}
	return EventDelivery
}

// DocumentStatus estado del ciclo de vida de un documento.
type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "Draft"
	StatusWaiting   DocumentStatus = "Waiting"
	StatusReady     DocumentStatus = "Ready"
	StatusDone      DocumentStatus = "Done"
	StatusCancelled DocumentStatus = "Cancelled"
)

// PlaceholderReference referencia temporal mientras la fila aún no tiene id.
const PlaceholderReference = "TEMP"

// Document cabecera de una entrega o recepción más sus líneas.
// WarehouseID es la bodega origen (entrega) o destino (recepción);
// ContactID es el cliente (entrega) o el proveedor (recepción).
type Document struct {
	ID                int64
	Kind              DocumentKind
	Reference         string
	Status            DocumentStatus
	WarehouseID       int64
	ContactID         int64
	ResponsibleUserID int64
	ScheduledDate     time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Solo lectura (JOIN)
	WarehouseName   string
	ContactName     string
	ResponsibleName string

	Items []DocumentItem
}

// DocumentItem línea de un documento.
type DocumentItem struct {
	ID              int64
	DocumentID      int64
	ProductID       int64
	Quantity        decimal.Decimal
	UnitCost        decimal.Decimal
	AlertOutOfStock bool

	// Solo lectura (JOIN)
	ProductName string
	SKU         string
}
