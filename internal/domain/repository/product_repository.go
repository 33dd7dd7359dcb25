package repository

import (
	"context"

	"github.com/jhoicas/stockops-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
}

// ContactRepository define el puerto de persistencia para Contact.
type ContactRepository interface {
	Create(ctx context.Context, c *entity.Contact) error
	GetByID(ctx context.Context, id int64) (*entity.Contact, error)
	List(ctx context.Context) ([]*entity.Contact, error)
}
