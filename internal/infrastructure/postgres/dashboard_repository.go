package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stockops-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de contadores del dashboard (read-only, solo pool).
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el repositorio de dashboard.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// ReceiptCounts total, borradores (tasks) y operaciones (Ready o Waiting).
func (r *DashboardRepo) ReceiptCounts(ctx context.Context) (repository.ReceiptCounts, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Draft'),
			COUNT(*) FILTER (WHERE status IN ('Ready', 'Waiting'))
		FROM receipts`
	var c repository.ReceiptCounts
	if err := r.pool.QueryRow(ctx, query).Scan(&c.Total, &c.Tasks, &c.Operations); err != nil {
		return c, fmt.Errorf("receipt counts: %w", err)
	}
	return c, nil
}

// DeliveryCounts total, borradores, en espera y operaciones (Ready o Done).
func (r *DashboardRepo) DeliveryCounts(ctx context.Context) (repository.DeliveryCounts, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Draft'),
			COUNT(*) FILTER (WHERE status = 'Waiting'),
			COUNT(*) FILTER (WHERE status IN ('Ready', 'Done'))
		FROM deliveries`
	var c repository.DeliveryCounts
	if err := r.pool.QueryRow(ctx, query).Scan(&c.Total, &c.Tasks, &c.Waiting, &c.Operations); err != nil {
		return c, fmt.Errorf("delivery counts: %w", err)
	}
	return c, nil
}

// StockCounts número de bodegas distintas con filas de stock.
func (r *DashboardRepo) StockCounts(ctx context.Context) (repository.StockCounts, error) {
	var c repository.StockCounts
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(DISTINCT warehouse_id) FROM stock`).Scan(&c.Warehouses); err != nil {
		return c, fmt.Errorf("stock counts: %w", err)
	}
	return c, nil
}
