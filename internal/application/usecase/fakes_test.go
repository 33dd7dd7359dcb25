package usecase_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockops-api/internal/domain"
	"github.com/jhoicas/stockops-api/internal/domain/entity"
)

type fakeWarehouses struct {
	rows   map[int64]*entity.Warehouse
	nextID int64
	inUse  map[int64]bool
}

func newFakeWarehouses() *fakeWarehouses {
	return &fakeWarehouses{rows: map[int64]*entity.Warehouse{}, inUse: map[int64]bool{}}
}

func (f *fakeWarehouses) Create(_ context.Context, w *entity.Warehouse) error {
	for _, r := range f.rows {
		if r.ShortCode == w.ShortCode {
			return domain.ErrDuplicate
		}
	}
	f.nextID++
	w.ID = f.nextID
	w.CreatedAt = time.Now()
	cp := *w
	f.rows[w.ID] = &cp
	return nil
}

func (f *fakeWarehouses) GetByID(_ context.Context, id int64) (*entity.Warehouse, error) {
	w, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (f *fakeWarehouses) List(_ context.Context) ([]*entity.Warehouse, error) {
	out := []*entity.Warehouse{}
	for _, w := range f.rows {
		cp := *w
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeWarehouses) Update(_ context.Context, w *entity.Warehouse) error {
	cur, ok := f.rows[w.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if w.Name != "" {
		cur.Name = w.Name
	}
	if w.ShortCode != "" {
		cur.ShortCode = w.ShortCode
	}
	if w.Address != "" {
		cur.Address = w.Address
	}
	*w = *cur
	return nil
}

func (f *fakeWarehouses) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return domain.ErrNotFound
	}
	if f.inUse[id] {
		return domain.ErrConflict
	}
	delete(f.rows, id)
	return nil
}

type fakeLocations struct {
	rows   []*entity.Location
	nextID int64
}

func (f *fakeLocations) Create(_ context.Context, l *entity.Location) error {
	f.nextID++
	l.ID = f.nextID
	cp := *l
	cp.WarehouseName = "" // la tabla no guarda el nombre de la bodega
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeLocations) GetByID(_ context.Context, id int64) (*entity.Location, error) {
	for _, l := range f.rows {
		if l.ID == id {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeLocations) List(_ context.Context, warehouseID *int64) ([]*entity.Location, error) {
	out := []*entity.Location{}
	for _, l := range f.rows {
		if warehouseID != nil && l.WarehouseID != *warehouseID {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeLocations) Update(_ context.Context, l *entity.Location) error {
	for _, cur := range f.rows {
		if cur.ID == l.ID {
			if l.Name != "" {
				cur.Name = l.Name
			}
			if l.ShortCode != "" {
				cur.ShortCode = l.ShortCode
			}
			if l.WarehouseID != 0 {
				cur.WarehouseID = l.WarehouseID
			}
			*l = *cur
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeLocations) Delete(_ context.Context, id int64) error {
	for i, l := range f.rows {
		if l.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeStock struct {
	rows    map[int64]*entity.Stock
	views   []*entity.StockView
	updates int
}

func (f *fakeStock) List(_ context.Context, warehouseID *int64) ([]*entity.StockView, error) {
	out := []*entity.StockView{}
	for _, v := range f.views {
		if warehouseID == nil || v.WarehouseID == *warehouseID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeStock) GetByID(_ context.Context, id int64) (*entity.Stock, error) {
	s, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStock) Update(_ context.Context, id int64, p entity.StockPatch) (*entity.Stock, error) {
	f.updates++
	s, ok := f.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.OnHand != nil {
		s.OnHand = *p.OnHand
	}
	if p.FreeToUse != nil {
		s.FreeToUse = *p.FreeToUse
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStock) ListForUpdate(context.Context, int64, int64) ([]entity.Stock, error) {
	return nil, nil
}

func (f *fakeStock) Adjust(context.Context, int64, decimal.Decimal) error { return nil }

func (f *fakeStock) Insert(context.Context, *entity.Stock) error { return nil }

type fakeMoves struct {
	views []*entity.MoveHistoryView
}

func (f *fakeMoves) Create(context.Context, *entity.MoveHistory) error { return nil }

func (f *fakeMoves) List(context.Context) ([]*entity.MoveHistoryView, error) {
	return f.views, nil
}

type fakeProducts struct {
	rows []*entity.Product
}

func (f *fakeProducts) Create(_ context.Context, p *entity.Product) error {
	for _, r := range f.rows {
		if r.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	p.ID = int64(len(f.rows) + 1)
	cp := *p
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeProducts) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	for _, p := range f.rows {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) List(context.Context) ([]*entity.Product, error) { return f.rows, nil }

type fakeContacts struct {
	rows []*entity.Contact
}

func (f *fakeContacts) Create(_ context.Context, c *entity.Contact) error {
	c.ID = int64(len(f.rows) + 1)
	cp := *c
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeContacts) GetByID(_ context.Context, id int64) (*entity.Contact, error) {
	for _, c := range f.rows {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeContacts) List(context.Context) ([]*entity.Contact, error) { return f.rows, nil }
