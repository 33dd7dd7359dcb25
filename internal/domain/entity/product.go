package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
type Product struct {
	ID        int64
	Name      string
	SKU       string
	UnitCost  decimal.Decimal
	CreatedAt time.Time
}

// Contact contraparte de un documento: cliente en entregas, proveedor en recepciones.
type Contact struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}
