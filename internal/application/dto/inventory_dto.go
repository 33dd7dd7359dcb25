package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockResponse fila de GET /api/stock.
type StockResponse struct {
	ID            int64           `json:"id"`
	ProductID     int64           `json:"product_id"`
	ProductName   string          `json:"product_name"`
	SKU           string          `json:"sku"`
	PerUnitCost   decimal.Decimal `json:"per_unit_cost"`
	OnHand        decimal.Decimal `json:"on_hand"`
	FreeToUse     decimal.Decimal `json:"free_to_use"`
	WarehouseID   int64           `json:"warehouse_id"`
	WarehouseName string          `json:"warehouse_name"`
	LocationName  string          `json:"location_name,omitempty"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// UpdateStockRequest body de PUT /api/stock/:id. Al menos un campo es obligatorio.
type UpdateStockRequest struct {
	OnHand    *decimal.Decimal `json:"on_hand"`
	FreeToUse *decimal.Decimal `json:"free_to_use"`
}

// StockRowResponse fila de stock tras una actualización.
type StockRowResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	WarehouseID int64           `json:"warehouse_id"`
	LocationID  *int64          `json:"location_id"`
	OnHand      decimal.Decimal `json:"on_hand"`
	FreeToUse   decimal.Decimal `json:"free_to_use"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// MoveHistoryResponse fila de GET /api/move-history.
type MoveHistoryResponse struct {
	ID                  int64           `json:"id"`
	Reference           string          `json:"reference"`
	Status              string          `json:"status"`
	EventType           string          `json:"event_type"`
	Quantity            decimal.Decimal `json:"quantity"`
	Date                time.Time       `json:"date"`
	CreatedAt           time.Time       `json:"created_at"`
	ContactName         string          `json:"contact_name,omitempty"`
	FromWarehouse       string          `json:"from_warehouse,omitempty"`
	ToWarehouse         string          `json:"to_warehouse,omitempty"`
	FromLocation        string          `json:"from_location,omitempty"`
	ToLocation          string          `json:"to_location,omitempty"`
	ProductName         string          `json:"product_name"`
	ProductSKU          string          `json:"product_sku"`
	ResponsibleUserName string          `json:"responsible_user_name,omitempty"`
}
