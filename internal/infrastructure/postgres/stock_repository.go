package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockops-api/internal/domain"
	"github.com/jhoicas/stockops-api/internal/domain/entity"
	"github.com/jhoicas/stockops-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// List proyección de stock con nombres de producto, bodega y ubicación, ordenada por producto.
func (r *StockRepo) List(ctx context.Context, warehouseID *int64) ([]*entity.StockView, error) {
	query := `
		SELECT
			s.id, s.product_id, COALESCE(p.name, ''), COALESCE(p.sku, ''), COALESCE(p.unit_cost, 0),
			s.warehouse_id, COALESCE(w.name, ''), COALESCE(l.name, ''),
			s.on_hand, s.free_to_use, s.updated_at
		FROM stock s
		LEFT JOIN products p ON s.product_id = p.id
		LEFT JOIN warehouses w ON s.warehouse_id = w.id
		LEFT JOIN locations l ON s.location_id = l.id
		WHERE ($1::bigint IS NULL OR s.warehouse_id = $1)
		ORDER BY p.name ASC, s.id ASC`
	rows, err := r.q.Query(ctx, query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	list := []*entity.StockView{}
	for rows.Next() {
		var v entity.StockView
		if err := rows.Scan(
			&v.ID, &v.ProductID, &v.ProductName, &v.SKU, &v.UnitCost,
			&v.WarehouseID, &v.WarehouseName, &v.LocationName,
			&v.OnHand, &v.FreeToUse, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

const stockColumns = `id, product_id, warehouse_id, location_id, on_hand, free_to_use, updated_at`

func scanStock(row pgx.Row) (*entity.Stock, error) {
	var s entity.Stock
	err := row.Scan(&s.ID, &s.ProductID, &s.WarehouseID, &s.LocationID, &s.OnHand, &s.FreeToUse, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByID obtiene una fila de stock.
func (r *StockRepo) GetByID(ctx context.Context, id int64) (*entity.Stock, error) {
	s, err := scanStock(r.q.QueryRow(ctx, `SELECT `+stockColumns+` FROM stock WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return s, nil
}

// Update aplica solo los campos presentes del patch; updated_at siempre se refresca.
func (r *StockRepo) Update(ctx context.Context, id int64, patch entity.StockPatch) (*entity.Stock, error) {
	if patch.Empty() {
		return nil, domain.ErrInvalidInput
	}
	query := `
		UPDATE stock SET
			on_hand = COALESCE($2::numeric, on_hand),
			free_to_use = COALESCE($3::numeric, free_to_use),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + stockColumns
	s, err := scanStock(r.q.QueryRow(ctx, query, id, patch.OnHand, patch.FreeToUse))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if isInvalidValue(err) {
			return nil, fmt.Errorf("update stock: %w", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("update stock: %w", err)
	}
	return s, nil
}

// ListForUpdate bloquea las filas del producto en la bodega (SELECT FOR UPDATE), ordenadas por id
// para que dos transacciones concurrentes tomen los locks en el mismo orden.
func (r *StockRepo) ListForUpdate(ctx context.Context, productID, warehouseID int64) ([]entity.Stock, error) {
	query := `SELECT ` + stockColumns + `
		FROM stock WHERE product_id = $1 AND warehouse_id = $2
		ORDER BY id
		FOR UPDATE`
	rows, err := r.q.Query(ctx, query, productID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("lock stock: %w", err)
	}
	defer rows.Close()
	var list []entity.Stock
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, *s)
	}
	return list, rows.Err()
}

// Adjust suma delta a on_hand y free_to_use.
func (r *StockRepo) Adjust(ctx context.Context, id int64, delta decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE stock SET on_hand = on_hand + $2, free_to_use = free_to_use + $2, updated_at = now()
		WHERE id = $1`, id, delta)
	if err != nil {
		if isInvalidValue(err) {
			return fmt.Errorf("adjust stock: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("adjust stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Insert crea una fila de stock y asigna ID y UpdatedAt.
func (r *StockRepo) Insert(ctx context.Context, s *entity.Stock) error {
	query := `
		INSERT INTO stock (product_id, warehouse_id, location_id, on_hand, free_to_use)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, updated_at`
	err := r.q.QueryRow(ctx, query, s.ProductID, s.WarehouseID, s.LocationID, s.OnHand, s.FreeToUse).
		Scan(&s.ID, &s.UpdatedAt)
	if err != nil {
		if isFKViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}
