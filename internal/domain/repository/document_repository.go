package repository

import (
	"context"

	"github.com/jhoicas/stockops-api/internal/domain/entity"
)

// DocumentRepository puerto de persistencia de entregas o recepciones.
// Cada implementación queda atada a un entity.DocumentKind (tablas deliveries/receipts).
type DocumentRepository interface {
	Kind() entity.DocumentKind
	// CreateHeader inserta la cabecera y asigna doc.ID.
	CreateHeader(ctx context.Context, doc *entity.Document) error
	SetReference(ctx context.Context, id int64, reference string) error
	AddItem(ctx context.Context, item *entity.DocumentItem) error
	// GetByID cabecera con nombres + líneas; (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Document, error)
	// List cabeceras ordenadas por created_at DESC, sin líneas.
	List(ctx context.Context) ([]*entity.Document, error)
	// GetForUpdate bloquea la cabecera (SELECT FOR UPDATE); (nil, nil) si no existe.
	GetForUpdate(ctx context.Context, id int64) (*entity.Document, error)
	UpdateStatus(ctx context.Context, id int64, status entity.DocumentStatus) error
	ListItems(ctx context.Context, documentID int64) ([]entity.DocumentItem, error)
}
