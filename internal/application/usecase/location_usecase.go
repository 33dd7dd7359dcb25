package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/stockops-api/internal/application/dto"
	"github.com/jhoicas/stockops-api/internal/domain"
	"github.com/jhoicas/stockops-api/internal/domain/entity"
	"github.com/jhoicas/stockops-api/internal/domain/repository"
)

// LocationUseCase CRUD de ubicaciones dentro de una bodega.
type LocationUseCase struct {
	repo          repository.LocationRepository
	warehouseRepo repository.WarehouseRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository, warehouseRepo repository.WarehouseRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo, warehouseRepo: warehouseRepo}
}

// Create crea una ubicación; la bodega debe existir.
func (uc *LocationUseCase) Create(ctx context.Context, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.ShortCode = strings.TrimSpace(in.ShortCode)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	wh, err := uc.warehouseRepo.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}
	loc := &entity.Location{
		Name:          in.Name,
		ShortCode:     in.ShortCode,
		WarehouseID:   in.WarehouseID,
		WarehouseName: wh.Name,
	}
	if err := uc.repo.Create(ctx, loc); err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// List lista ubicaciones; warehouseID opcional.
func (uc *LocationUseCase) List(ctx context.Context, warehouseID *int64) ([]dto.LocationResponse, error) {
	list, err := uc.repo.List(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *toLocationResponse(l))
	}
	return out, nil
}

// Update actualiza solo los campos enviados.
func (uc *LocationUseCase) Update(ctx context.Context, id int64, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	var target *entity.Warehouse
	if in.WarehouseID > 0 {
		wh, err := uc.warehouseRepo.GetByID(ctx, in.WarehouseID)
		if err != nil {
			return nil, err
		}
		if wh == nil {
			return nil, domain.ErrNotFound
		}
		target = wh
	}
	loc := &entity.Location{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		ShortCode:   strings.TrimSpace(in.ShortCode),
		WarehouseID: in.WarehouseID,
	}
	if err := uc.repo.Update(ctx, loc); err != nil {
		return nil, err
	}
	if target != nil {
		loc.WarehouseName = target.Name
	} else if loc.WarehouseName == "" {
		wh, err := uc.warehouseRepo.GetByID(ctx, loc.WarehouseID)
		if err != nil {
			return nil, err
		}
		if wh != nil {
			loc.WarehouseName = wh.Name
		}
	}
	return toLocationResponse(loc), nil
}

// Delete elimina una ubicación; con stock asociado retorna domain.ErrConflict.
func (uc *LocationUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:            l.ID,
		Name:          l.Name,
		ShortCode:     l.ShortCode,
		WarehouseID:   l.WarehouseID,
		WarehouseName: l.WarehouseName,
	}
}
