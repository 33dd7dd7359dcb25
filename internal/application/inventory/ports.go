package inventory

import (
	"context"

	"github.com/jhoicas/stockops-api/internal/domain/entity"
	"github.com/jhoicas/stockops-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para creación y transición de documentos.
type TxRunner interface {
	RunDocument(ctx context.Context, kind entity.DocumentKind, fn func(
		docRepo repository.DocumentRepository,
		warehouseRepo repository.WarehouseRepository,
		stockRepo repository.StockRepository,
		moveRepo repository.MoveHistoryRepository,
	) error) error
}

// SlipGenerator genera el PDF imprimible (remisión / nota de recepción) de un documento.
type SlipGenerator interface {
	GenerateSlip(ctx context.Context, doc *entity.Document) ([]byte, error)
}
