package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stockops-api/internal/application/dto"
	"github.com/jhoicas/stockops-api/internal/domain"
	"github.com/jhoicas/stockops-api/internal/domain/document"
	"github.com/jhoicas/stockops-api/internal/domain/entity"
	inv "github.com/jhoicas/stockops-api/internal/domain/inventory"
	"github.com/jhoicas/stockops-api/internal/domain/repository"
)

// TransitionFromRequest valida el body y ejecuta Transition.
func (uc *DocumentUseCase) TransitionFromRequest(ctx context.Context, kind entity.DocumentKind, id, userID int64, in dto.TransitionRequest) (*dto.DocumentResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	target, ok := document.ParseStatus(in.Status)
	if !ok {
		return nil, dto.NewValidationError("status", "oneof")
	}
	return uc.Transition(ctx, kind, id, target, userID)
}

// Transition avanza el estado del documento con la cabecera bloqueada (SELECT FOR UPDATE).
// Solo se aceptan estados estrictamente posteriores o Cancelled; Done y Cancelled son terminales.
// Al pasar a Done se mueve el stock y se registra una fila de move_history por línea, en la misma tx.
func (uc *DocumentUseCase) Transition(ctx context.Context, kind entity.DocumentKind, id int64, target entity.DocumentStatus, userID int64) (*dto.DocumentResponse, error) {
	if _, err := uc.repo(kind); err != nil {
		return nil, err
	}
	var result *entity.Document
	err := uc.txRunner.RunDocument(ctx, kind, func(
		docRepo repository.DocumentRepository,
		_ repository.WarehouseRepository,
		stockRepo repository.StockRepository,
		moveRepo repository.MoveHistoryRepository,
	) error {
		doc, err := docRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if doc == nil {
			return domain.ErrNotFound
		}
		if !document.CanTransition(doc.Status, target) {
			return fmt.Errorf("%s -> %s: %w", doc.Status, target, domain.ErrInvalidTransition)
		}
		if target == entity.StatusDone {
			items, err := docRepo.ListItems(ctx, doc.ID)
			if err != nil {
				return err
			}
			doc.Items = items
			if err := uc.applyDone(ctx, stockRepo, moveRepo, doc, userID, time.Now()); err != nil {
				return err
			}
		}
		if err := docRepo.UpdateStatus(ctx, doc.ID, target); err != nil {
			return err
		}
		doc.Status = target
		result = doc
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("kind", string(kind)).Int64("id", id).Str("status", string(target)).Msg("estado actualizado")
	resp := toDocumentResponse(result)
	return &resp, nil
}

// applyDone mueve el stock de cada línea: entrega descuenta, recepción suma.
func (uc *DocumentUseCase) applyDone(
	ctx context.Context,
	stockRepo repository.StockRepository,
	moveRepo repository.MoveHistoryRepository,
	doc *entity.Document,
	userID int64,
	now time.Time,
) error {
	for _, item := range doc.Items {
		var err error
		switch doc.Kind {
		case entity.KindDelivery:
			err = uc.doOUT(ctx, stockRepo, doc, item)
		case entity.KindReceipt:
			err = doIN(ctx, stockRepo, doc, item)
		default:
			err = fmt.Errorf("tipo de documento desconocido %q", doc.Kind)
		}
		if err != nil {
			return err
		}
		if err := moveRepo.Create(ctx, moveFor(doc, item, userID, now)); err != nil {
			return err
		}
	}
	return nil
}

// doOUT bloquea las filas del producto en la bodega origen y reparte la salida entre ellas.
func (uc *DocumentUseCase) doOUT(ctx context.Context, stockRepo repository.StockRepository, doc *entity.Document, item entity.DocumentItem) error {
	rows, err := stockRepo.ListForUpdate(ctx, item.ProductID, doc.WarehouseID)
	if err != nil {
		return err
	}
	allocs, shortfall, err := inv.AllocateOut(rows, item.Quantity, item.AlertOutOfStock)
	if err != nil {
		return fmt.Errorf("producto %d: disponible %s, solicitado %s: %w",
			item.ProductID, inv.Available(rows).String(), item.Quantity.String(), err)
	}
	if shortfall.IsPositive() {
		uc.log.Warn().
			Str("reference", doc.Reference).
			Int64("product_id", item.ProductID).
			Int64("warehouse_id", doc.WarehouseID).
			Str("shortfall", shortfall.String()).
			Msg("entrega deja stock negativo")
	}
	for _, a := range allocs {
		if err := stockRepo.Adjust(ctx, a.StockID, a.Quantity.Neg()); err != nil {
			return err
		}
	}
	return nil
}

// doIN suma a la primera fila del producto en la bodega destino o crea una sin ubicación.
func doIN(ctx context.Context, stockRepo repository.StockRepository, doc *entity.Document, item entity.DocumentItem) error {
	rows, err := stockRepo.ListForUpdate(ctx, item.ProductID, doc.WarehouseID)
	if err != nil {
		return err
	}
	if len(rows) > 0 {
		return stockRepo.Adjust(ctx, rows[0].ID, item.Quantity)
	}
	return stockRepo.Insert(ctx, &entity.Stock{
		ProductID:   item.ProductID,
		WarehouseID: doc.WarehouseID,
		OnHand:      item.Quantity,
		FreeToUse:   item.Quantity,
	})
}

func moveFor(doc *entity.Document, item entity.DocumentItem, userID int64, now time.Time) *entity.MoveHistory {
	contactID := doc.ContactID
	warehouseID := doc.WarehouseID
	m := &entity.MoveHistory{
		Reference: doc.Reference,
		Status:    string(entity.StatusDone),
		EventType: doc.Kind.EventType(),
		Quantity:  item.Quantity,
		Date:      now,
		ContactID: &contactID,
		ProductID: item.ProductID,
	}
	if userID > 0 {
		m.ResponsibleUserID = &userID
	}
	if doc.Kind == entity.KindDelivery {
		m.FromWarehouseID = &warehouseID
	} else {
		m.ToWarehouseID = &warehouseID
	}
	return m
}
