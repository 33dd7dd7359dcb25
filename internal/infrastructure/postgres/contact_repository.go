package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockops-api/internal/domain/entity"
	"github.com/jhoicas/stockops-api/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo clientes y proveedores.
type ContactRepo struct {
	q Querier
}

func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

func (r *ContactRepo) Create(ctx context.Context, c *entity.Contact) error {
	query := `
		INSERT INTO contacts (name, email, phone)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
		RETURNING id, created_at`
	if err := r.q.QueryRow(ctx, query, c.Name, c.Email, c.Phone).Scan(&c.ID, &c.CreatedAt); err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

func (r *ContactRepo) GetByID(ctx context.Context, id int64) (*entity.Contact, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), created_at
		FROM contacts WHERE id = $1`
	var c entity.Contact
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return &c, nil
}

func (r *ContactRepo) List(ctx context.Context) ([]*entity.Contact, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), created_at
		FROM contacts ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()
	list := []*entity.Contact{}
	for rows.Next() {
		var c entity.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
