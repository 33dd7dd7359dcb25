package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/stockops-api/internal/application/dto"
	"github.com/jhoicas/stockops-api/internal/domain"
	"github.com/jhoicas/stockops-api/internal/domain/entity"
	"github.com/jhoicas/stockops-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para bodegas.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create crea una nueva bodega. El código corto se guarda en mayúsculas.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.ShortCode = strings.ToUpper(strings.TrimSpace(in.ShortCode))
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	warehouse := &entity.Warehouse{
		Name:      in.Name,
		ShortCode: in.ShortCode,
		Address:   strings.TrimSpace(in.Address),
	}
	if err := uc.repo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega por ID.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id int64) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return toWarehouseResponse(warehouse), nil
}

// Update actualiza solo los campos enviados.
func (uc *WarehouseUseCase) Update(ctx context.Context, id int64, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	in.ShortCode = strings.ToUpper(strings.TrimSpace(in.ShortCode))
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	warehouse := &entity.Warehouse{
		ID:        id,
		Name:      strings.TrimSpace(in.Name),
		ShortCode: in.ShortCode,
		Address:   strings.TrimSpace(in.Address),
	}
	if err := uc.repo.Update(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista todas las bodegas por nombre.
func (uc *WarehouseUseCase) List(ctx context.Context) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return items, nil
}

// Delete elimina una bodega por ID. Con ubicaciones, stock o documentos asociados retorna domain.ErrConflict.
func (uc *WarehouseUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		ShortCode: w.ShortCode,
		Address:   w.Address,
		CreatedAt: w.CreatedAt,
	}
}
