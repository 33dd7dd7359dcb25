package dto

import "time"

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	ShortCode string `json:"short_code" validate:"required,max=10,alphanum"`
	Address   string `json:"address" validate:"omitempty,max=500"`
}

// UpdateWarehouseRequest campos opcionales; vacío = no cambiar.
type UpdateWarehouseRequest struct {
	Name      string `json:"name" validate:"omitempty,max=200"`
	ShortCode string `json:"short_code" validate:"omitempty,max=10,alphanum"`
	Address   string `json:"address" validate:"omitempty,max=500"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ShortCode string    `json:"short_code"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateLocationRequest entrada para crear una ubicación.
type CreateLocationRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	ShortCode   string `json:"short_code" validate:"required,max=20"`
	WarehouseID int64  `json:"warehouse_id" validate:"required,gt=0"`
}

// UpdateLocationRequest campos opcionales.
type UpdateLocationRequest struct {
	Name        string `json:"name" validate:"omitempty,max=200"`
	ShortCode   string `json:"short_code" validate:"omitempty,max=20"`
	WarehouseID int64  `json:"warehouse_id" validate:"omitempty,gt=0"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ShortCode     string `json:"short_code"`
	WarehouseID   int64  `json:"warehouse_id"`
	WarehouseName string `json:"warehouse_name,omitempty"`
}
