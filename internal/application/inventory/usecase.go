package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/stockops-api/internal/application/dto"
	"github.com/jhoicas/stockops-api/internal/domain"
	"github.com/jhoicas/stockops-api/internal/domain/document"
	"github.com/jhoicas/stockops-api/internal/domain/entity"
	"github.com/jhoicas/stockops-api/internal/domain/repository"
	"github.com/jhoicas/stockops-api/pkg/logger"
)

const dateLayout = "2006-01-02"

// CreateDocumentCommand entrada normalizada para crear una entrega o recepción.
type CreateDocumentCommand struct {
	Kind              entity.DocumentKind
	WarehouseID       int64
	ContactID         int64
	ResponsibleUserID int64
	ScheduledDate     time.Time
	Items             []entity.DocumentItem
}

// DocumentUseCase ciclo de vida de entregas y recepciones:
// creación con referencia, consulta, transición de estado y PDF.
type DocumentUseCase struct {
	txRunner TxRunner
	repos    map[entity.DocumentKind]repository.DocumentRepository
	slips    SlipGenerator
	log      *logger.Logger
}

// NewDocumentUseCase construye el caso de uso. deliveries y receipts son repos sobre el pool (lecturas).
func NewDocumentUseCase(
	txRunner TxRunner,
	deliveries, receipts repository.DocumentRepository,
	slips SlipGenerator,
	log *logger.Logger,
) *DocumentUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &DocumentUseCase{
		txRunner: txRunner,
		repos: map[entity.DocumentKind]repository.DocumentRepository{
			entity.KindDelivery: deliveries,
			entity.KindReceipt:  receipts,
		},
		slips: slips,
		log:   log.Component("documents"),
	}
}

func (uc *DocumentUseCase) repo(kind entity.DocumentKind) (repository.DocumentRepository, error) {
	r, ok := uc.repos[kind]
	if !ok || r == nil {
		return nil, fmt.Errorf("tipo de documento desconocido %q", kind)
	}
	return r, nil
}

// DeliveryCommand valida el request de entrega y lo convierte en comando.
func DeliveryCommand(userID int64, in dto.CreateDeliveryRequest) (CreateDocumentCommand, error) {
	if err := dto.Validate(in); err != nil {
		return CreateDocumentCommand{}, err
	}
	return buildCommand(entity.KindDelivery, userID, in.FromWarehouseID, in.ToContactID, in.ScheduledDate, in.Items)
}

// ReceiptCommand valida el request de recepción y lo convierte en comando.
func ReceiptCommand(userID int64, in dto.CreateReceiptRequest) (CreateDocumentCommand, error) {
	if err := dto.Validate(in); err != nil {
		return CreateDocumentCommand{}, err
	}
	return buildCommand(entity.KindReceipt, userID, in.ToWarehouseID, in.FromContactID, in.ScheduledDate, in.Items)
}

func buildCommand(kind entity.DocumentKind, userID, warehouseID, contactID int64, date string, in []dto.DocumentItemRequest) (CreateDocumentCommand, error) {
	if userID <= 0 {
		return CreateDocumentCommand{}, domain.ErrUnauthorized
	}
	scheduled, err := time.Parse(dateLayout, date)
	if err != nil {
		return CreateDocumentCommand{}, dto.NewValidationError("scheduled_date", "datetime")
	}
	items := make([]entity.DocumentItem, 0, len(in))
	for _, it := range in {
		items = append(items, entity.DocumentItem{
			ProductID:       it.ProductID,
			Quantity:        it.Quantity,
			UnitCost:        it.UnitCost,
			AlertOutOfStock: it.AlertOutOfStock,
		})
	}
	return CreateDocumentCommand{
		Kind:              kind,
		WarehouseID:       warehouseID,
		ContactID:         contactID,
		ResponsibleUserID: userID,
		ScheduledDate:     scheduled,
		Items:             items,
	}, nil
}

// validateCommand reglas que el comando debe cumplir aunque no venga de un request HTTP.
func validateCommand(cmd CreateDocumentCommand) error {
	fields := map[string]string{}
	if cmd.WarehouseID <= 0 {
		fields["warehouse_id"] = "required"
	}
	if cmd.ContactID <= 0 {
		fields["contact_id"] = "required"
	}
	if cmd.ScheduledDate.IsZero() {
		fields["scheduled_date"] = "required"
	}
	if len(cmd.Items) == 0 {
		fields["items"] = "min"
	}
	for i, it := range cmd.Items {
		if it.ProductID <= 0 {
			fields[fmt.Sprintf("items[%d].product_id", i)] = "required"
		}
		if !it.Quantity.IsPositive() {
			fields[fmt.Sprintf("items[%d].quantity", i)] = "gt"
		} else if rule := dto.QuantityRule(it.Quantity); rule != "" {
			fields[fmt.Sprintf("items[%d].quantity", i)] = rule
		}
		if it.UnitCost.IsNegative() {
			fields[fmt.Sprintf("items[%d].unit_cost", i)] = "gte"
		} else if rule := dto.MoneyRule(it.UnitCost); rule != "" {
			fields[fmt.Sprintf("items[%d].unit_cost", i)] = rule
		}
	}
	if len(fields) > 0 {
		return &dto.ValidationError{Fields: fields}
	}
	return nil
}

// Create crea el documento en una sola transacción:
// bodega → cabecera TEMP/Draft → referencia con el id asignado → líneas en orden.
// Cualquier fallo revierte todo; si la bodega no existe no se escribe nada.
func (uc *DocumentUseCase) Create(ctx context.Context, cmd CreateDocumentCommand) (*dto.CreateDocumentResponse, error) {
	if cmd.ResponsibleUserID <= 0 {
		return nil, domain.ErrUnauthorized
	}
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}
	if _, err := uc.repo(cmd.Kind); err != nil {
		return nil, err
	}

	var out dto.CreateDocumentResponse
	err := uc.txRunner.RunDocument(ctx, cmd.Kind, func(
		docRepo repository.DocumentRepository,
		warehouseRepo repository.WarehouseRepository,
		_ repository.StockRepository,
		_ repository.MoveHistoryRepository,
	) error {
		wh, err := warehouseRepo.GetByID(ctx, cmd.WarehouseID)
		if err != nil {
			return err
		}
		if wh == nil {
			return fmt.Errorf("bodega %d: %w", cmd.WarehouseID, domain.ErrNotFound)
		}

		doc := &entity.Document{
			Kind:              cmd.Kind,
			Reference:         entity.PlaceholderReference,
			Status:            entity.StatusDraft,
			WarehouseID:       cmd.WarehouseID,
			ContactID:         cmd.ContactID,
			ResponsibleUserID: cmd.ResponsibleUserID,
			ScheduledDate:     cmd.ScheduledDate,
		}
		if err := docRepo.CreateHeader(ctx, doc); err != nil {
			return err
		}

		ref := document.FormatReference(wh.ShortCode, cmd.Kind.Direction(), doc.ID)
		if err := docRepo.SetReference(ctx, doc.ID, ref); err != nil {
			return err
		}

		for i := range cmd.Items {
			item := cmd.Items[i]
			item.DocumentID = doc.ID
			if err := docRepo.AddItem(ctx, &item); err != nil {
				return fmt.Errorf("línea %d: %w", i, err)
			}
		}
		out = dto.CreateDocumentResponse{ID: doc.ID, Reference: ref}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("kind", string(cmd.Kind)).Int64("id", out.ID).Str("reference", out.Reference).Msg("documento creado")
	return &out, nil
}

// Get devuelve cabecera y líneas. Documento inexistente -> domain.ErrNotFound.
func (uc *DocumentUseCase) Get(ctx context.Context, kind entity.DocumentKind, id int64) (*dto.DocumentDetailResponse, error) {
	repo, err := uc.repo(kind)
	if err != nil {
		return nil, err
	}
	doc, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	return toDocumentDetail(doc), nil
}

// List cabeceras del tipo indicado, más recientes primero.
func (uc *DocumentUseCase) List(ctx context.Context, kind entity.DocumentKind) ([]dto.DocumentResponse, error) {
	repo, err := uc.repo(kind)
	if err != nil {
		return nil, err
	}
	docs, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d))
	}
	return out, nil
}

// Slip genera el PDF del documento y el nombre de archivo sugerido.
func (uc *DocumentUseCase) Slip(ctx context.Context, kind entity.DocumentKind, id int64) ([]byte, string, error) {
	if uc.slips == nil {
		return nil, "", fmt.Errorf("generador de PDF no configurado")
	}
	repo, err := uc.repo(kind)
	if err != nil {
		return nil, "", err
	}
	doc, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if doc == nil {
		return nil, "", domain.ErrNotFound
	}
	pdfBytes, err := uc.slips.GenerateSlip(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF: %w", err)
	}
	return pdfBytes, SlipFilename(doc), nil
}

// SlipFilename nombre de archivo a partir de la referencia: WH/OUT/008 -> WH-OUT-008.pdf.
func SlipFilename(doc *entity.Document) string {
	return strings.ReplaceAll(doc.Reference, "/", "-") + ".pdf"
}

func toDocumentResponse(d *entity.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:                  d.ID,
		Kind:                string(d.Kind),
		Reference:           d.Reference,
		Status:              string(d.Status),
		ScheduledDate:       d.ScheduledDate.Format(dateLayout),
		WarehouseID:         d.WarehouseID,
		WarehouseName:       d.WarehouseName,
		ContactID:           d.ContactID,
		ContactName:         d.ContactName,
		ResponsibleUserID:   d.ResponsibleUserID,
		ResponsibleUserName: d.ResponsibleName,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

func toDocumentDetail(d *entity.Document) *dto.DocumentDetailResponse {
	items := make([]dto.DocumentItemResponse, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, dto.DocumentItemResponse{
			ID:              it.ID,
			ProductID:       it.ProductID,
			ProductName:     it.ProductName,
			SKU:             it.SKU,
			Quantity:        it.Quantity,
			UnitCost:        it.UnitCost,
			AlertOutOfStock: it.AlertOutOfStock,
		})
	}
	return &dto.DocumentDetailResponse{DocumentResponse: toDocumentResponse(d), Items: items}
}
