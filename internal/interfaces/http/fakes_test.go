package http_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockops-api/internal/domain"
	"github.com/jhoicas/stockops-api/internal/domain/entity"
	"github.com/jhoicas/stockops-api/internal/domain/repository"
)

type memUsers struct {
	mu    sync.Mutex
	users []entity.User
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.users {
		if x.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	u.ID = int64(len(m.users) + 1)
	u.CreatedAt = time.Now()
	m.users = append(m.users, *u)
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

func (m *memUsers) UpdatePassword(_ context.Context, email, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].Email == email {
			m.users[i].PasswordHash = hash
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type memResets struct {
	tokens []entity.PasswordResetToken
}

func (m *memResets) Create(_ context.Context, t *entity.PasswordResetToken) error {
	m.tokens = append(m.tokens, *t)
	return nil
}

func (m *memResets) FindValid(_ context.Context, email, token string, now time.Time) (*entity.PasswordResetToken, error) {
	for i := len(m.tokens) - 1; i >= 0; i-- {
		t := m.tokens[i]
		if t.Email == email && t.Token == token && t.ExpiresAt.After(now) {
			return &t, nil
		}
	}
	return nil, nil
}

func (m *memResets) DeleteByEmail(_ context.Context, email string) error {
	kept := m.tokens[:0]
	for _, t := range m.tokens {
		if t.Email != email {
			kept = append(kept, t)
		}
	}
	m.tokens = kept
	return nil
}

type memAuthTx struct {
	users  *memUsers
	resets *memResets
}

func (t memAuthTx) RunAuth(_ context.Context, fn func(repository.UserRepository, repository.PasswordResetRepository) error) error {
	return fn(t.users, t.resets)
}

type recordingMailer struct {
	codes map[string]string
}

func (m *recordingMailer) Send(_ context.Context, email, code string) error {
	m.codes[email] = code
	return nil
}

type memStock struct {
	rows    map[int64]*entity.Stock
	updates int
}

func (m *memStock) List(context.Context, *int64) ([]*entity.StockView, error) {
	return []*entity.StockView{}, nil
}

func (m *memStock) GetByID(_ context.Context, id int64) (*entity.Stock, error) {
	return m.rows[id], nil
}

func (m *memStock) Update(_ context.Context, id int64, p entity.StockPatch) (*entity.Stock, error) {
	m.updates++
	s, ok := m.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.OnHand != nil {
		s.OnHand = *p.OnHand
	}
	if p.FreeToUse != nil {
		s.FreeToUse = *p.FreeToUse
	}
	s.UpdatedAt = time.Now()
	cp := *s
	return &cp, nil
}

func (m *memStock) ListForUpdate(context.Context, int64, int64) ([]entity.Stock, error) {
	return nil, nil
}

func (m *memStock) Adjust(context.Context, int64, decimal.Decimal) error { return nil }

func (m *memStock) Insert(context.Context, *entity.Stock) error { return nil }

type memWarehouses struct {
	rows []*entity.Warehouse
}

func (m *memWarehouses) Create(_ context.Context, w *entity.Warehouse) error {
	w.ID = int64(len(m.rows) + 1)
	cp := *w
	m.rows = append(m.rows, &cp)
	return nil
}

func (m *memWarehouses) GetByID(_ context.Context, id int64) (*entity.Warehouse, error) {
	for _, w := range m.rows {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, nil
}

func (m *memWarehouses) List(context.Context) ([]*entity.Warehouse, error) { return m.rows, nil }

func (m *memWarehouses) Update(context.Context, *entity.Warehouse) error { return domain.ErrNotFound }

func (m *memWarehouses) Delete(context.Context, int64) error { return domain.ErrConflict }

// memDocs cabeceras y líneas de entregas/recepciones. RunDocument toma el lock y
// restaura el estado si la función falla; los repos de lectura toman el lock por su cuenta.
type memDocs struct {
	mu      sync.Mutex
	seq     int64
	headers map[entity.DocumentKind]map[int64]entity.Document
	items   map[int64][]entity.DocumentItem

	warehouses *memWarehouses
	stock      *memStock
	moves      *memMoves
}

func newMemDocs(warehouses *memWarehouses, stock *memStock, moves *memMoves) *memDocs {
	return &memDocs{
		headers: map[entity.DocumentKind]map[int64]entity.Document{
			entity.KindDelivery: {},
			entity.KindReceipt:  {},
		},
		items:      map[int64][]entity.DocumentItem{},
		warehouses: warehouses,
		stock:      stock,
		moves:      moves,
	}
}

func (s *memDocs) count(kind entity.DocumentKind) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.headers[kind])
}

func (s *memDocs) RunDocument(_ context.Context, kind entity.DocumentKind, fn func(
	repository.DocumentRepository, repository.WarehouseRepository,
	repository.StockRepository, repository.MoveHistoryRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	headers := map[entity.DocumentKind]map[int64]entity.Document{}
	for k, m := range s.headers {
		headers[k] = map[int64]entity.Document{}
		for id, h := range m {
			headers[k][id] = h
		}
	}
	items := map[int64][]entity.DocumentItem{}
	for id, list := range s.items {
		items[id] = append([]entity.DocumentItem(nil), list...)
	}
	if err := fn(&memDocRepo{s: s, kind: kind}, s.warehouses, s.stock, s.moves); err != nil {
		s.headers = headers
		s.items = items
		return err
	}
	return nil
}

type memDocRepo struct {
	s      *memDocs
	kind   entity.DocumentKind
	locked bool
}

func (r *memDocRepo) guard() func() {
	if !r.locked {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *memDocRepo) Kind() entity.DocumentKind { return r.kind }

func (r *memDocRepo) CreateHeader(_ context.Context, d *entity.Document) error {
	defer r.guard()()
	r.s.seq++
	d.ID = r.s.seq
	d.Kind = r.kind
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	r.s.headers[r.kind][d.ID] = *d
	return nil
}

func (r *memDocRepo) SetReference(_ context.Context, id int64, ref string) error {
	defer r.guard()()
	h, ok := r.s.headers[r.kind][id]
	if !ok {
		return domain.ErrNotFound
	}
	h.Reference = ref
	r.s.headers[r.kind][id] = h
	return nil
}

func (r *memDocRepo) AddItem(_ context.Context, it *entity.DocumentItem) error {
	defer r.guard()()
	it.ID = int64(len(r.s.items[it.DocumentID]) + 1)
	r.s.items[it.DocumentID] = append(r.s.items[it.DocumentID], *it)
	return nil
}

func (r *memDocRepo) GetByID(_ context.Context, id int64) (*entity.Document, error) {
	defer r.guard()()
	h, ok := r.s.headers[r.kind][id]
	if !ok {
		return nil, nil
	}
	h.Items = append([]entity.DocumentItem{}, r.s.items[id]...)
	return &h, nil
}

func (r *memDocRepo) List(context.Context) ([]*entity.Document, error) {
	defer r.guard()()
	list := []*entity.Document{}
	for _, h := range r.s.headers[r.kind] {
		h := h
		list = append(list, &h)
	}
	return list, nil
}

func (r *memDocRepo) GetForUpdate(_ context.Context, id int64) (*entity.Document, error) {
	defer r.guard()()
	h, ok := r.s.headers[r.kind][id]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

func (r *memDocRepo) UpdateStatus(_ context.Context, id int64, st entity.DocumentStatus) error {
	defer r.guard()()
	h, ok := r.s.headers[r.kind][id]
	if !ok {
		return domain.ErrNotFound
	}
	h.Status = st
	r.s.headers[r.kind][id] = h
	return nil
}

func (r *memDocRepo) ListItems(_ context.Context, id int64) ([]entity.DocumentItem, error) {
	defer r.guard()()
	return append([]entity.DocumentItem{}, r.s.items[id]...), nil
}

type fakeSlips struct{}

func (fakeSlips) GenerateSlip(_ context.Context, doc *entity.Document) ([]byte, error) {
	return []byte("%PDF-1.4 " + doc.Reference), nil
}

type memMoves struct {
	views []*entity.MoveHistoryView
}

func (m *memMoves) Create(_ context.Context, mv *entity.MoveHistory) error {
	mv.ID = int64(len(m.views) + 1)
	m.views = append([]*entity.MoveHistoryView{{
		ID:        mv.ID,
		Reference: mv.Reference,
		Status:    mv.Status,
		EventType: mv.EventType,
		Quantity:  mv.Quantity,
		Date:      mv.Date,
	}}, m.views...)
	return nil
}

func (m *memMoves) List(context.Context) ([]*entity.MoveHistoryView, error) { return m.views, nil }

type fixedDashboard struct{}

func (fixedDashboard) ReceiptCounts(context.Context) (repository.ReceiptCounts, error) {
	return repository.ReceiptCounts{Total: 4, Tasks: 1, Operations: 2}, nil
}

func (fixedDashboard) DeliveryCounts(context.Context) (repository.DeliveryCounts, error) {
	return repository.DeliveryCounts{Total: 6, Tasks: 2, Waiting: 1, Operations: 3}, nil
}

func (fixedDashboard) StockCounts(context.Context) (repository.StockCounts, error) {
	return repository.StockCounts{Warehouses: 2}, nil
}
