package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockops-api/internal/domain/entity"
)

// StockRepository define el puerto para consultar/actualizar stock por bodega+producto.
// Los métodos *ForUpdate y Adjust se usan dentro de transacciones.
type StockRepository interface {
	// List devuelve la proyección de stock ordenada por nombre de producto; filtra por bodega si no es nil.
	List(ctx context.Context, warehouseID *int64) ([]*entity.StockView, error)
	GetByID(ctx context.Context, id int64) (*entity.Stock, error)
	// Update aplica el patch parcial y refresca updated_at. Retorna domain.ErrNotFound si no existe.
	Update(ctx context.Context, id int64, patch entity.StockPatch) (*entity.Stock, error)
	// ListForUpdate bloquea (SELECT FOR UPDATE) las filas del producto en la bodega, ordenadas por id.
	ListForUpdate(ctx context.Context, productID, warehouseID int64) ([]entity.Stock, error)
	// Adjust suma delta (puede ser negativo) a on_hand y free_to_use.
	Adjust(ctx context.Context, id int64, delta decimal.Decimal) error
	Insert(ctx context.Context, s *entity.Stock) error
}
