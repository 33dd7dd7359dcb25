package usecase

import (
	"context"

	"github.com/jhoicas/stockops-api/internal/application/dto"
	"github.com/jhoicas/stockops-api/internal/domain/entity"
	"github.com/jhoicas/stockops-api/internal/domain/repository"
)

// StockUseCase proyección de stock y actualización parcial.
type StockUseCase struct {
	repo repository.StockRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockRepository) *StockUseCase {
	return &StockUseCase{repo: repo}
}

// List filas de stock con nombres para mostrar; warehouseID opcional.
func (uc *StockUseCase) List(ctx context.Context, warehouseID *int64) ([]dto.StockResponse, error) {
	rows, err := uc.repo.List(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockResponse, 0, len(rows))
	for _, v := range rows {
		out = append(out, dto.StockResponse{
			ID:            v.ID,
			ProductID:     v.ProductID,
			ProductName:   v.ProductName,
			SKU:           v.SKU,
			PerUnitCost:   v.UnitCost,
			OnHand:        v.OnHand,
			FreeToUse:     v.FreeToUse,
			WarehouseID:   v.WarehouseID,
			WarehouseName: v.WarehouseName,
			LocationName:  v.LocationName,
			UpdatedAt:     v.UpdatedAt,
		})
	}
	return out, nil
}

// Update cambia on_hand y/o free_to_use. Sin ninguno de los dos es error de validación y no se escribe nada.
// Última escritura gana: no hay control optimista.
func (uc *StockUseCase) Update(ctx context.Context, id int64, in dto.UpdateStockRequest) (*dto.StockRowResponse, error) {
	patch := entity.StockPatch{OnHand: in.OnHand, FreeToUse: in.FreeToUse}
	if patch.Empty() {
		return nil, &dto.ValidationError{Fields: map[string]string{
			"on_hand":     "required_without",
			"free_to_use": "required_without",
		}}
	}
	fields := map[string]string{}
	if patch.OnHand != nil {
		if rule := dto.QuantityRule(*patch.OnHand); rule != "" {
			fields["on_hand"] = rule
		}
	}
	if patch.FreeToUse != nil {
		if rule := dto.QuantityRule(*patch.FreeToUse); rule != "" {
			fields["free_to_use"] = rule
		}
	}
	if len(fields) > 0 {
		return nil, &dto.ValidationError{Fields: fields}
	}
	s, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return &dto.StockRowResponse{
		ID:          s.ID,
		ProductID:   s.ProductID,
		WarehouseID: s.WarehouseID,
		LocationID:  s.LocationID,
		OnHand:      s.OnHand,
		FreeToUse:   s.FreeToUse,
		UpdatedAt:   s.UpdatedAt,
	}, nil
}
