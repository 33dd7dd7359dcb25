package repository

import (
	"context"

	"github.com/jhoicas/stockops-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
// GetByID y GetByShortCode retornan (nil, nil) si no existe.
type WarehouseRepository interface {
	Create(ctx context.Context, w *entity.Warehouse) error
	GetByID(ctx context.Context, id int64) (*entity.Warehouse, error)
	List(ctx context.Context) ([]*entity.Warehouse, error)
	// Update aplica solo los campos no vacíos (COALESCE). Retorna domain.ErrNotFound si no existe.
	Update(ctx context.Context, w *entity.Warehouse) error
	// Delete retorna domain.ErrConflict si hay filas que dependen de la bodega.
	Delete(ctx context.Context, id int64) error
}

// LocationRepository define el puerto de persistencia para Location.
type LocationRepository interface {
	Create(ctx context.Context, l *entity.Location) error
	GetByID(ctx context.Context, id int64) (*entity.Location, error)
	// List filtra por bodega cuando warehouseID no es nil.
	List(ctx context.Context, warehouseID *int64) ([]*entity.Location, error)
	Update(ctx context.Context, l *entity.Location) error
	Delete(ctx context.Context, id int64) error
}
