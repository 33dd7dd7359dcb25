package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentItemRequest línea de una entrega o recepción.
type DocumentItemRequest struct {
	ProductID       int64           `json:"product_id" validate:"required,gt=0"`
	Quantity        decimal.Decimal `json:"quantity" validate:"gt=0"`
	UnitCost        decimal.Decimal `json:"unit_cost" validate:"gte=0"`
	AlertOutOfStock bool            `json:"alert_out_of_stock"`
}

// CreateDeliveryRequest body de POST /api/deliveries. El responsable sale de la sesión.
type CreateDeliveryRequest struct {
	FromWarehouseID int64                 `json:"from_warehouse_id" validate:"required,gt=0"`
	ToContactID     int64                 `json:"to_contact_id" validate:"required,gt=0"`
	ScheduledDate   string                `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	Items           []DocumentItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateReceiptRequest body de POST /api/receipts.
type CreateReceiptRequest struct {
	ToWarehouseID int64                 `json:"to_warehouse_id" validate:"required,gt=0"`
	FromContactID int64                 `json:"from_contact_id" validate:"required,gt=0"`
	ScheduledDate string                `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	Items         []DocumentItemRequest `json:"items" validate:"required,min=1,dive"`
}

// TransitionRequest body de POST /api/{deliveries|receipts}/:id/status.
type TransitionRequest struct {
	Status string `json:"status" validate:"required,oneof=Draft Waiting Ready Done Cancelled"`
}

// CreateDocumentResponse respuesta de creación: id y referencia asignada.
type CreateDocumentResponse struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
}

// DocumentItemResponse línea con nombre y SKU del producto.
type DocumentItemResponse struct {
	ID              int64           `json:"id"`
	ProductID       int64           `json:"product_id"`
	ProductName     string          `json:"product_name"`
	SKU             string          `json:"sku"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	AlertOutOfStock bool            `json:"alert_out_of_stock"`
}

// DocumentResponse cabecera de entrega o recepción (listados).
type DocumentResponse struct {
	ID                  int64     `json:"id"`
	Kind                string    `json:"kind"`
	Reference           string    `json:"reference"`
	Status              string    `json:"status"`
	ScheduledDate       string    `json:"scheduled_date"`
	WarehouseID         int64     `json:"warehouse_id"`
	WarehouseName       string    `json:"warehouse_name"`
	ContactID           int64     `json:"contact_id"`
	ContactName         string    `json:"contact_name"`
	ResponsibleUserID   int64     `json:"responsible_user_id"`
	ResponsibleUserName string    `json:"responsible_user_name"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// DocumentDetailResponse cabecera más líneas; items siempre presente ([] si no hay líneas).
type DocumentDetailResponse struct {
	DocumentResponse
	Items []DocumentItemResponse `json:"items"`
}
