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

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// documentTables nombres de tablas/columnas por tipo de documento.
// Son constantes internas: nunca vienen del request.
type documentTables struct {
	header       string // deliveries | receipts
	items        string // delivery_items | receipt_items
	itemFK       string // delivery_id | receipt_id
	warehouseCol string // from_warehouse_id | to_warehouse_id
	contactCol   string // to_contact_id | from_contact_id
}

var tablesByKind = map[entity.DocumentKind]documentTables{
	entity.KindDelivery: {"deliveries", "delivery_items", "delivery_id", "from_warehouse_id", "to_contact_id"},
	entity.KindReceipt:  {"receipts", "receipt_items", "receipt_id", "to_warehouse_id", "from_contact_id"},
}

// DocumentRepo implementación de DocumentRepository para entregas o recepciones (usable con pool o tx).
type DocumentRepo struct {
	q    Querier
	kind entity.DocumentKind
	t    documentTables
}

// NewDeliveryRepository repositorio de entregas (tabla deliveries).
func NewDeliveryRepository(q Querier) *DocumentRepo {
	return NewDocumentRepository(q, entity.KindDelivery)
}

// NewReceiptRepository repositorio de recepciones (tabla receipts).
func NewReceiptRepository(q Querier) *DocumentRepo {
	return NewDocumentRepository(q, entity.KindReceipt)
}

// NewDocumentRepository construye el adaptador para el tipo indicado. Panic si el tipo no existe.
func NewDocumentRepository(q Querier, kind entity.DocumentKind) *DocumentRepo {
	t, ok := tablesByKind[kind]
	if !ok {
		panic(fmt.Sprintf("postgres: tipo de documento desconocido %q", kind))
	}
	return &DocumentRepo{q: q, kind: kind, t: t}
}

func (r *DocumentRepo) Kind() entity.DocumentKind { return r.kind }

// CreateHeader inserta la cabecera con la referencia y estado que traiga doc (normalmente TEMP/Draft).
func (r *DocumentRepo) CreateHeader(ctx context.Context, doc *entity.Document) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (reference, status, %s, %s, responsible_user_id, scheduled_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`, r.t.header, r.t.warehouseCol, r.t.contactCol)
	err := r.q.QueryRow(ctx, query,
		doc.Reference, doc.Status, doc.WarehouseID, doc.ContactID, doc.ResponsibleUserID, doc.ScheduledDate,
	).Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		if isFKViolation(err) {
			return domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert %s: %w", r.t.header, err)
	}
	return nil
}

// SetReference fija la referencia definitiva.
func (r *DocumentRepo) SetReference(ctx context.Context, id int64, reference string) error {
	query := fmt.Sprintf(`UPDATE %s SET reference = $2, updated_at = now() WHERE id = $1`, r.t.header)
	if _, err := r.q.Exec(ctx, query, id, reference); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("set reference: %w", err)
	}
	return nil
}

// AddItem inserta una línea del documento.
func (r *DocumentRepo) AddItem(ctx context.Context, item *entity.DocumentItem) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, product_id, quantity, unit_cost, alert_out_of_stock)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`, r.t.items, r.t.itemFK)
	err := r.q.QueryRow(ctx, query,
		item.DocumentID, item.ProductID, item.Quantity, item.UnitCost, item.AlertOutOfStock,
	).Scan(&item.ID)
	if err != nil {
		if isFKViolation(err) {
			return domain.ErrNotFound
		}
		if isInvalidValue(err) {
			return fmt.Errorf("insert %s: %w", r.t.items, domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert %s: %w", r.t.items, err)
	}
	return nil
}

func (r *DocumentRepo) selectHeader() string {
	return fmt.Sprintf(`
		SELECT d.id, d.reference, d.status, d.%[2]s, d.%[3]s, d.responsible_user_id, d.scheduled_date,
			d.created_at, d.updated_at,
			COALESCE(w.name, ''), COALESCE(c.name, ''), COALESCE(u.name, '')
		FROM %[1]s d
		LEFT JOIN warehouses w ON d.%[2]s = w.id
		LEFT JOIN contacts c ON d.%[3]s = c.id
		LEFT JOIN users u ON d.responsible_user_id = u.id`, r.t.header, r.t.warehouseCol, r.t.contactCol)
}

func (r *DocumentRepo) scanHeader(row pgx.Row) (*entity.Document, error) {
	d := entity.Document{Kind: r.kind}
	err := row.Scan(
		&d.ID, &d.Reference, &d.Status, &d.WarehouseID, &d.ContactID, &d.ResponsibleUserID, &d.ScheduledDate,
		&d.CreatedAt, &d.UpdatedAt,
		&d.WarehouseName, &d.ContactName, &d.ResponsibleName,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetByID cabecera más líneas. Un documento sin líneas devuelve Items vacío (no nil).
func (r *DocumentRepo) GetByID(ctx context.Context, id int64) (*entity.Document, error) {
	d, err := r.scanHeader(r.q.QueryRow(ctx, r.selectHeader()+` WHERE d.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", r.t.header, err)
	}
	items, err := r.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Items = items
	return d, nil
}

// List cabeceras, más recientes primero.
func (r *DocumentRepo) List(ctx context.Context) ([]*entity.Document, error) {
	rows, err := r.q.Query(ctx, r.selectHeader()+` ORDER BY d.created_at DESC, d.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.t.header, err)
	}
	defer rows.Close()
	list := []*entity.Document{}
	for rows.Next() {
		d, err := r.scanHeader(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.t.header, err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// GetForUpdate bloquea la cabecera para la transición de estado. No trae nombres ni líneas.
func (r *DocumentRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Document, error) {
	query := fmt.Sprintf(`
		SELECT id, reference, status, %s, %s, responsible_user_id, scheduled_date, created_at, updated_at
		FROM %s WHERE id = $1
		FOR UPDATE`, r.t.warehouseCol, r.t.contactCol, r.t.header)
	d := entity.Document{Kind: r.kind}
	err := r.q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Reference, &d.Status, &d.WarehouseID, &d.ContactID, &d.ResponsibleUserID, &d.ScheduledDate,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock %s: %w", r.t.header, err)
	}
	return &d, nil
}

func (r *DocumentRepo) UpdateStatus(ctx context.Context, id int64, status entity.DocumentStatus) error {
	query := fmt.Sprintf(`UPDATE %s SET status = $2, updated_at = now() WHERE id = $1`, r.t.header)
	cmd, err := r.q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListItems líneas en orden de inserción con nombre y SKU del producto.
func (r *DocumentRepo) ListItems(ctx context.Context, documentID int64) ([]entity.DocumentItem, error) {
	query := fmt.Sprintf(`
		SELECT i.id, i.%[2]s, i.product_id, i.quantity, i.unit_cost, i.alert_out_of_stock,
			COALESCE(p.name, ''), COALESCE(p.sku, '')
		FROM %[1]s i
		LEFT JOIN products p ON i.product_id = p.id
		WHERE i.%[2]s = $1
		ORDER BY i.id`, r.t.items, r.t.itemFK)
	rows, err := r.q.Query(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.t.items, err)
	}
	defer rows.Close()
	items := []entity.DocumentItem{}
	for rows.Next() {
		var it entity.DocumentItem
		if err := rows.Scan(
			&it.ID, &it.DocumentID, &it.ProductID, &it.Quantity, &it.UnitCost, &it.AlertOutOfStock,
			&it.ProductName, &it.SKU,
		); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.t.items, err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
