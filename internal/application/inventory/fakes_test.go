package inventory_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockops-api/internal/domain"
	"github.com/jhoicas/stockops-api/internal/domain/entity"
	"github.com/jhoicas/stockops-api/internal/domain/repository"
)

// memStore base de datos en memoria; memTx serializa las transacciones y restaura el snapshot si fallan.
type memStore struct {
	mu         sync.Mutex
	seq        map[string]int64
	warehouses map[int64]entity.Warehouse
	headers    map[entity.DocumentKind]map[int64]entity.Document
	items      map[entity.DocumentKind][]entity.DocumentItem
	stock      map[int64]entity.Stock
	moves      []entity.MoveHistory

	failAddItemAt int // -1 = nunca; n = falla al insertar la línea n (0-based) de cualquier documento
	addItemCalls  int
}

func newMemStore() *memStore {
	return &memStore{
		seq:        map[string]int64{},
		warehouses: map[int64]entity.Warehouse{},
		headers: map[entity.DocumentKind]map[int64]entity.Document{
			entity.KindDelivery: {},
			entity.KindReceipt:  {},
		},
		items:         map[entity.DocumentKind][]entity.DocumentItem{},
		stock:         map[int64]entity.Stock{},
		failAddItemAt: -1,
	}
}

func (s *memStore) next(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

func (s *memStore) addWarehouse(name, code string) int64 {
	id := s.next("warehouses")
	s.warehouses[id] = entity.Warehouse{ID: id, Name: name, ShortCode: code}
	return id
}

func (s *memStore) addStock(productID, warehouseID int64, onHand string) int64 {
	id := s.next("stock")
	q := decimal.RequireFromString(onHand)
	s.stock[id] = entity.Stock{ID: id, ProductID: productID, WarehouseID: warehouseID, OnHand: q, FreeToUse: q}
	return id
}

func (s *memStore) countHeaders(kind entity.DocumentKind) int { return len(s.headers[kind]) }
func (s *memStore) countItems(kind entity.DocumentKind) int   { return len(s.items[kind]) }

type snapshot struct {
	seq        map[string]int64
	warehouses map[int64]entity.Warehouse
	headers    map[entity.DocumentKind]map[int64]entity.Document
	items      map[entity.DocumentKind][]entity.DocumentItem
	stock      map[int64]entity.Stock
	moves      []entity.MoveHistory
}

// seq no se restaura: como en Postgres, las secuencias no retroceden con el rollback.
func (s *memStore) snapshot() snapshot {
	sn := snapshot{
		warehouses: map[int64]entity.Warehouse{},
		headers:    map[entity.DocumentKind]map[int64]entity.Document{},
		items:      map[entity.DocumentKind][]entity.DocumentItem{},
		stock:      map[int64]entity.Stock{},
		moves:      append([]entity.MoveHistory(nil), s.moves...),
	}
	for k, v := range s.warehouses {
		sn.warehouses[k] = v
	}
	for kind, m := range s.headers {
		sn.headers[kind] = map[int64]entity.Document{}
		for k, v := range m {
			sn.headers[kind][k] = v
		}
	}
	for kind, list := range s.items {
		sn.items[kind] = append([]entity.DocumentItem(nil), list...)
	}
	for k, v := range s.stock {
		sn.stock[k] = v
	}
	return sn
}

func (s *memStore) restore(sn snapshot) {
	s.warehouses = sn.warehouses
	s.headers = sn.headers
	s.items = sn.items
	s.stock = sn.stock
	s.moves = sn.moves
}

// memTx implementa inventory.TxRunner.
type memTx struct{ s *memStore }

func (t memTx) RunDocument(_ context.Context, kind entity.DocumentKind, fn func(
	repository.DocumentRepository, repository.WarehouseRepository,
	repository.StockRepository, repository.MoveHistoryRepository,
) error) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	sn := t.s.snapshot()
	if err := fn(&memDocRepo{s: t.s, kind: kind}, &memWarehouseRepo{s: t.s}, &memStockRepo{s: t.s}, &memMoveRepo{s: t.s}); err != nil {
		t.s.restore(sn)
		return err
	}
	return nil
}

// lockedDocRepo repo de lectura fuera de tx: toma el lock del store.
type lockedDocRepo struct {
	s    *memStore
	kind entity.DocumentKind
}

func (r *lockedDocRepo) inner() *memDocRepo { return &memDocRepo{s: r.s, kind: r.kind} }

func (r *lockedDocRepo) Kind() entity.DocumentKind { return r.kind }
func (r *lockedDocRepo) CreateHeader(ctx context.Context, d *entity.Document) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.inner().CreateHeader(ctx, d)
}
func (r *lockedDocRepo) SetReference(ctx context.Context, id int64, ref string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.inner().SetReference(ctx, id, ref)
}
func (r *lockedDocRepo) AddItem(ctx context.Context, it *entity.DocumentItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.inner().AddItem(ctx, it)
}
func (r *lockedDocRepo) GetByID(ctx context.Context, id int64) (*entity.Document, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.inner().GetByID(ctx, id)
}
func (r *lockedDocRepo) List(ctx context.Context) ([]*entity.Document, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.inner().List(ctx)
}
func (r *lockedDocRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Document, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.inner().GetForUpdate(ctx, id)
}
func (r *lockedDocRepo) UpdateStatus(ctx context.Context, id int64, st entity.DocumentStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.inner().UpdateStatus(ctx, id, st)
}
func (r *lockedDocRepo) ListItems(ctx context.Context, id int64) ([]entity.DocumentItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.inner().ListItems(ctx, id)
}

// memDocRepo asume el lock tomado por memTx.
type memDocRepo struct {
	s    *memStore
	kind entity.DocumentKind
}

func (r *memDocRepo) Kind() entity.DocumentKind { return r.kind }

func (r *memDocRepo) CreateHeader(_ context.Context, d *entity.Document) error {
	d.ID = r.s.next(string(r.kind))
	d.Kind = r.kind
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	r.s.headers[r.kind][d.ID] = *d
	return nil
}

func (r *memDocRepo) SetReference(_ context.Context, id int64, ref string) error {
	for otherID, h := range r.s.headers[r.kind] {
		if otherID != id && h.Reference == ref {
			return domain.ErrDuplicate
		}
	}
	h, ok := r.s.headers[r.kind][id]
	if !ok {
		return domain.ErrNotFound
	}
	h.Reference = ref
	r.s.headers[r.kind][id] = h
	return nil
}

func (r *memDocRepo) AddItem(_ context.Context, it *entity.DocumentItem) error {
	call := r.s.addItemCalls
	r.s.addItemCalls++
	if r.s.failAddItemAt >= 0 && call == r.s.failAddItemAt {
		return errors.New("insert item: conexión perdida")
	}
	it.ID = r.s.next(string(r.kind) + "_items")
	r.s.items[r.kind] = append(r.s.items[r.kind], *it)
	return nil
}

func (r *memDocRepo) GetByID(ctx context.Context, id int64) (*entity.Document, error) {
	h, ok := r.s.headers[r.kind][id]
	if !ok {
		return nil, nil
	}
	if wh, ok := r.s.warehouses[h.WarehouseID]; ok {
		h.WarehouseName = wh.Name
	}
	items, _ := r.ListItems(ctx, id)
	h.Items = items
	return &h, nil
}

func (r *memDocRepo) List(context.Context) ([]*entity.Document, error) {
	list := []*entity.Document{}
	for _, h := range r.s.headers[r.kind] {
		h := h
		list = append(list, &h)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (r *memDocRepo) GetForUpdate(_ context.Context, id int64) (*entity.Document, error) {
	h, ok := r.s.headers[r.kind][id]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

func (r *memDocRepo) UpdateStatus(_ context.Context, id int64, st entity.DocumentStatus) error {
	h, ok := r.s.headers[r.kind][id]
	if !ok {
		return domain.ErrNotFound
	}
	h.Status = st
	r.s.headers[r.kind][id] = h
	return nil
}

func (r *memDocRepo) ListItems(_ context.Context, id int64) ([]entity.DocumentItem, error) {
	out := []entity.DocumentItem{}
	for _, it := range r.s.items[r.kind] {
		if it.DocumentID == id {
			out = append(out, it)
		}
	}
	return out, nil
}

type memWarehouseRepo struct{ s *memStore }

func (r *memWarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	w.ID = r.s.next("warehouses")
	r.s.warehouses[w.ID] = *w
	return nil
}

func (r *memWarehouseRepo) GetByID(_ context.Context, id int64) (*entity.Warehouse, error) {
	w, ok := r.s.warehouses[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r *memWarehouseRepo) List(context.Context) ([]*entity.Warehouse, error) { return nil, nil }
func (r *memWarehouseRepo) Update(context.Context, *entity.Warehouse) error   { return nil }
func (r *memWarehouseRepo) Delete(context.Context, int64) error               { return nil }

type memStockRepo struct{ s *memStore }

func (r *memStockRepo) List(context.Context, *int64) ([]*entity.StockView, error) { return nil, nil }

func (r *memStockRepo) GetByID(_ context.Context, id int64) (*entity.Stock, error) {
	st, ok := r.s.stock[id]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

func (r *memStockRepo) Update(context.Context, int64, entity.StockPatch) (*entity.Stock, error) {
	return nil, errors.New("no usado")
}

func (r *memStockRepo) ListForUpdate(_ context.Context, productID, warehouseID int64) ([]entity.Stock, error) {
	var out []entity.Stock
	for _, st := range r.s.stock {
		if st.ProductID == productID && st.WarehouseID == warehouseID {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memStockRepo) Adjust(_ context.Context, id int64, delta decimal.Decimal) error {
	st, ok := r.s.stock[id]
	if !ok {
		return domain.ErrNotFound
	}
	st.OnHand = st.OnHand.Add(delta)
	st.FreeToUse = st.FreeToUse.Add(delta)
	r.s.stock[id] = st
	return nil
}

func (r *memStockRepo) Insert(_ context.Context, st *entity.Stock) error {
	st.ID = r.s.next("stock")
	r.s.stock[st.ID] = *st
	return nil
}

type memMoveRepo struct{ s *memStore }

func (r *memMoveRepo) Create(_ context.Context, m *entity.MoveHistory) error {
	m.ID = r.s.next("move_history")
	r.s.moves = append(r.s.moves, *m)
	return nil
}

func (r *memMoveRepo) List(context.Context) ([]*entity.MoveHistoryView, error) { return nil, nil }
