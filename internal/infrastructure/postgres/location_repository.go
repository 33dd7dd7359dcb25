package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockops-api/internal/domain"
	"github.com/jhoicas/stockops-api/internal/domain/entity"
	"github.com/jhoicas/stockops-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de ubicaciones.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

const selectLocation = `
	SELECT l.id, l.name, l.short_code, l.warehouse_id, COALESCE(w.name, '')
	FROM locations l
	LEFT JOIN warehouses w ON l.warehouse_id = w.id`

func (r *LocationRepo) Create(ctx context.Context, l *entity.Location) error {
	query := `
		INSERT INTO locations (name, short_code, warehouse_id)
		VALUES ($1, $2, $3)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, l.Name, l.ShortCode, l.WarehouseID).Scan(&l.ID); err != nil {
		if isFKViolation(err) {
			return domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

func (r *LocationRepo) GetByID(ctx context.Context, id int64) (*entity.Location, error) {
	var l entity.Location
	err := r.q.QueryRow(ctx, selectLocation+` WHERE l.id = $1`, id).
		Scan(&l.ID, &l.Name, &l.ShortCode, &l.WarehouseID, &l.WarehouseName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// List lista ubicaciones por nombre; warehouseID opcional.
func (r *LocationRepo) List(ctx context.Context, warehouseID *int64) ([]*entity.Location, error) {
	query := selectLocation + ` WHERE ($1::bigint IS NULL OR l.warehouse_id = $1) ORDER BY l.name ASC`
	rows, err := r.q.Query(ctx, query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	list := []*entity.Location{}
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.ShortCode, &l.WarehouseID, &l.WarehouseName); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update COALESCE parcial; WarehouseID 0 = no cambiar. Deja en l la fila final con el nombre de la bodega.
func (r *LocationRepo) Update(ctx context.Context, l *entity.Location) error {
	query := `
		WITH updated AS (
			UPDATE locations SET
				name = COALESCE(NULLIF($2, ''), name),
				short_code = COALESCE(NULLIF($3, ''), short_code),
				warehouse_id = COALESCE(NULLIF($4, 0::bigint), warehouse_id)
			WHERE id = $1
			RETURNING name, short_code, warehouse_id
		)
		SELECT u.name, u.short_code, u.warehouse_id, COALESCE(w.name, '')
		FROM updated u
		LEFT JOIN warehouses w ON w.id = u.warehouse_id`
	err := r.q.QueryRow(ctx, query, l.ID, l.Name, l.ShortCode, l.WarehouseID).
		Scan(&l.Name, &l.ShortCode, &l.WarehouseID, &l.WarehouseName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isFKViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

func (r *LocationRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		if isFKViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete location: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
