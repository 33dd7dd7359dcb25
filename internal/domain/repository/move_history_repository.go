package repository

import (
	"context"

	"github.com/jhoicas/stockops-api/internal/domain/entity"
)

// MoveHistoryRepository historial append-only de movimientos.
type MoveHistoryRepository interface {
	Create(ctx context.Context, m *entity.MoveHistory) error
	// List más recientes primero, con nombres para mostrar.
	List(ctx context.Context) ([]*entity.MoveHistoryView, error)
}
