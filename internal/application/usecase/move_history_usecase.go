package usecase

import (
	"context"

	"github.com/jhoicas/stockops-api/internal/application/dto"
	"github.com/jhoicas/stockops-api/internal/domain/repository"
)

// MoveHistoryUseCase lectura del historial de movimientos.
type MoveHistoryUseCase struct {
	repo repository.MoveHistoryRepository
}

func NewMoveHistoryUseCase(repo repository.MoveHistoryRepository) *MoveHistoryUseCase {
	return &MoveHistoryUseCase{repo: repo}
}

// List movimientos más recientes primero.
func (uc *MoveHistoryUseCase) List(ctx context.Context) ([]dto.MoveHistoryResponse, error) {
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MoveHistoryResponse, 0, len(rows))
	for _, v := range rows {
		out = append(out, dto.MoveHistoryResponse{
			ID:                  v.ID,
			Reference:           v.Reference,
			Status:              v.Status,
			EventType:           v.EventType,
			Quantity:            v.Quantity,
			Date:                v.Date,
			CreatedAt:           v.CreatedAt,
			ContactName:         v.ContactName,
			FromWarehouse:       v.FromWarehouse,
			ToWarehouse:         v.ToWarehouse,
			FromLocation:        v.FromLocation,
			ToLocation:          v.ToLocation,
			ProductName:         v.ProductName,
			ProductSKU:          v.ProductSKU,
			ResponsibleUserName: v.ResponsibleUserName,
		})
	}
	return out, nil
}
