package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockops-api/internal/domain/entity"
	"github.com/jhoicas/stockops-api/internal/domain/repository"
)

var _ repository.MoveHistoryRepository = (*MoveHistoryRepo)(nil)

// MoveHistoryRepo historial de movimientos sobre PostgreSQL.
type MoveHistoryRepo struct {
	q Querier
}

// NewMoveHistoryRepository construye el adaptador. Pasar pool o tx.
func NewMoveHistoryRepository(q Querier) *MoveHistoryRepo {
	return &MoveHistoryRepo{q: q}
}

// Create inserta un movimiento (append-only, nunca se actualiza).
func (r *MoveHistoryRepo) Create(ctx context.Context, m *entity.MoveHistory) error {
	query := `
		INSERT INTO move_history (
			reference, status, event_type, quantity, date, contact_id,
			from_warehouse_id, to_warehouse_id, from_location_id, to_location_id,
			product_id, responsible_user_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		m.Reference, m.Status, m.EventType, m.Quantity, m.Date, m.ContactID,
		m.FromWarehouseID, m.ToWarehouseID, m.FromLocationID, m.ToLocationID,
		m.ProductID, m.ResponsibleUserID,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert move history: %w", err)
	}
	return nil
}

// List movimientos con nombres para mostrar, más recientes primero.
func (r *MoveHistoryRepo) List(ctx context.Context) ([]*entity.MoveHistoryView, error) {
	query := `
		SELECT
			mh.id, mh.reference, mh.status, mh.event_type, mh.quantity, mh.date, mh.created_at,
			COALESCE(c.name, ''), COALESCE(fw.name, ''), COALESCE(tw.name, ''),
			COALESCE(fl.name, ''), COALESCE(tl.name, ''),
			COALESCE(p.name, ''), COALESCE(p.sku, ''), COALESCE(u.name, '')
		FROM move_history mh
		LEFT JOIN contacts c ON mh.contact_id = c.id
		LEFT JOIN warehouses fw ON mh.from_warehouse_id = fw.id
		LEFT JOIN warehouses tw ON mh.to_warehouse_id = tw.id
		LEFT JOIN locations fl ON mh.from_location_id = fl.id
		LEFT JOIN locations tl ON mh.to_location_id = tl.id
		LEFT JOIN products p ON mh.product_id = p.id
		LEFT JOIN users u ON mh.responsible_user_id = u.id
		ORDER BY mh.created_at DESC, mh.id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list move history: %w", err)
	}
	defer rows.Close()
	list := []*entity.MoveHistoryView{}
	for rows.Next() {
		var v entity.MoveHistoryView
		if err := rows.Scan(
			&v.ID, &v.Reference, &v.Status, &v.EventType, &v.Quantity, &v.Date, &v.CreatedAt,
			&v.ContactName, &v.FromWarehouse, &v.ToWarehouse,
			&v.FromLocation, &v.ToLocation,
			&v.ProductName, &v.ProductSKU, &v.ResponsibleUserName,
		); err != nil {
			return nil, fmt.Errorf("scan move history: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
