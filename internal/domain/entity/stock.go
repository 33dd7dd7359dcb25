package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock cantidades de un producto en una bodega/ubicación.
// OnHand es lo físico; FreeToUse lo que no está comprometido.
type Stock struct {
	ID          int64
	ProductID   int64
	WarehouseID int64
	LocationID  *int64
	OnHand      decimal.Decimal
	FreeToUse   decimal.Decimal
	UpdatedAt   time.Time
}

// StockView fila de la proyección de stock con nombres para mostrar.
type StockView struct {
	ID            int64
	ProductID     int64
	ProductName   string
	SKU           string
	UnitCost      decimal.Decimal
	WarehouseID   int64
	WarehouseName string
	LocationName  string
	OnHand        decimal.Decimal
	FreeToUse     decimal.Decimal
	UpdatedAt     time.Time
}

// StockPatch actualización parcial: solo se tocan los campos no nil.
type StockPatch struct {
	OnHand    *decimal.Decimal
	FreeToUse *decimal.Decimal
}

// Empty indica que no hay campos para actualizar.
func (p StockPatch) Empty() bool {
	return p.OnHand == nil && p.FreeToUse == nil
}
