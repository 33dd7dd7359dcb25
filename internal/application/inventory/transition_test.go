package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockops-api/internal/application/dto"
	"github.com/jhoicas/stockops-api/internal/domain"
	"github.com/jhoicas/stockops-api/internal/domain/entity"
)

func createDelivery(t *testing.T, s *memStore, wh int64, items ...entity.DocumentItem) int64 {
	t.Helper()
	uc, _ := newUseCase(s)
	out, err := uc.Create(context.Background(), deliveryCmd(wh, items...))
	require.NoError(t, err)
	return out.ID
}

func TestTransition_AvanzaYSaltaEstados(t *testing.T) {
	s := newMemStore()
	wh := s.addWarehouse("Principal", "WH")
	id := createDelivery(t, s, wh, item(1, "1"))
	uc, _ := newUseCase(s)

	resp, err := uc.Transition(context.Background(), entity.KindDelivery, id, entity.StatusReady, 9)
	require.NoError(t, err)
	assert.Equal(t, "Ready", resp.Status)

	_, err = uc.Transition(context.Background(), entity.KindDelivery, id, entity.StatusWaiting, 9)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, entity.StatusReady, s.headers[entity.KindDelivery][id].Status)
}

func TestTransition_DoneEsTerminal(t *testing.T) {
	s := newMemStore()
	wh := s.addWarehouse("Principal", "WH")
	s.addStock(1, wh, "10")
	id := createDelivery(t, s, wh, item(1, "1"))
	uc, _ := newUseCase(s)

	_, err := uc.Transition(context.Background(), entity.KindDelivery, id, entity.StatusDone, 9)
	require.NoError(t, err)

	for _, target := range []entity.DocumentStatus{entity.StatusDraft, entity.StatusReady, entity.StatusDone, entity.StatusCancelled} {
		_, err := uc.Transition(context.Background(), entity.KindDelivery, id, target, 9)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition, "Done -> %s", target)
	}
	assert.Len(t, s.moves, 1, "el stock se mueve una sola vez")
}

func TestTransition_Inexistente(t *testing.T) {
	s := newMemStore()
	uc, _ := newUseCase(s)
	_, err := uc.Transition(context.Background(), entity.KindDelivery, 42, entity.StatusReady, 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransition_EntregaDoneDescuentaStock(t *testing.T) {
	s := newMemStore()
	wh := s.addWarehouse("Principal", "WH")
	a := s.addStock(1, wh, "3")
	b := s.addStock(1, wh, "4")
	id := createDelivery(t, s, wh, item(1, "5"))
	uc, _ := newUseCase(s)

	_, err := uc.Transition(context.Background(), entity.KindDelivery, id, entity.StatusDone, 9)
	require.NoError(t, err)

	assert.True(t, s.stock[a].OnHand.IsZero())
	assert.True(t, s.stock[b].OnHand.Equal(qty("2")))
	assert.True(t, s.stock[b].FreeToUse.Equal(qty("2")))

	require.Len(t, s.moves, 1)
	m := s.moves[0]
	assert.Equal(t, entity.EventDelivery, m.EventType)
	assert.Equal(t, "WH/OUT/001", m.Reference)
	assert.Equal(t, "Done", m.Status)
	require.NotNil(t, m.FromWarehouseID)
	assert.Equal(t, wh, *m.FromWarehouseID)
	assert.Nil(t, m.ToWarehouseID)
	require.NotNil(t, m.ResponsibleUserID)
	assert.Equal(t, int64(9), *m.ResponsibleUserID)
}

func TestTransition_StockInsuficienteRevierte(t *testing.T) {
	s := newMemStore()
	wh := s.addWarehouse("Principal", "WH")
	a := s.addStock(1, wh, "10")
	s.addStock(2, wh, "1")
	id := createDelivery(t, s, wh, item(1, "4"), item(2, "5"))
	uc, _ := newUseCase(s)

	_, err := uc.Transition(context.Background(), entity.KindDelivery, id, entity.StatusDone, 9)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, s.stock[a].OnHand.Equal(qty("10")), "la primera línea también se revierte")
	assert.Empty(t, s.moves)
	assert.Equal(t, entity.StatusDraft, s.headers[entity.KindDelivery][id].Status)
}

func TestTransition_AlertaPermiteNegativo(t *testing.T) {
	s := newMemStore()
	wh := s.addWarehouse("Principal", "WH")
	a := s.addStock(1, wh, "2")
	it := item(1, "5")
	it.AlertOutOfStock = true
	id := createDelivery(t, s, wh, it)
	uc, _ := newUseCase(s)

	_, err := uc.Transition(context.Background(), entity.KindDelivery, id, entity.StatusDone, 9)
	require.NoError(t, err)
	assert.True(t, s.stock[a].OnHand.Equal(qty("-3")))
}

func TestTransition_RecepcionDoneSumaOCreaFila(t *testing.T) {
	s := newMemStore()
	wh := s.addWarehouse("Norte", "NOR")
	existing := s.addStock(1, wh, "1")
	uc, _ := newUseCase(s)

	cmd := deliveryCmd(wh, item(1, "4"), item(2, "6"))
	cmd.Kind = entity.KindReceipt
	out, err := uc.Create(context.Background(), cmd)
	require.NoError(t, err)

	_, err = uc.Transition(context.Background(), entity.KindReceipt, out.ID, entity.StatusDone, 9)
	require.NoError(t, err)

	assert.True(t, s.stock[existing].OnHand.Equal(qty("5")))
	var created *entity.Stock
	for _, st := range s.stock {
		if st.ProductID == 2 {
			st := st
			created = &st
		}
	}
	require.NotNil(t, created, "se crea fila para el producto nuevo")
	assert.True(t, created.OnHand.Equal(qty("6")))
	assert.Nil(t, created.LocationID)

	require.Len(t, s.moves, 2)
	assert.Equal(t, entity.EventReceipt, s.moves[0].EventType)
	require.NotNil(t, s.moves[0].ToWarehouseID)
	assert.Equal(t, wh, *s.moves[0].ToWarehouseID)
}

func TestTransition_CancelarNoMueveStock(t *testing.T) {
	s := newMemStore()
	wh := s.addWarehouse("Principal", "WH")
	a := s.addStock(1, wh, "3")
	id := createDelivery(t, s, wh, item(1, "1"))
	uc, _ := newUseCase(s)

	_, err := uc.Transition(context.Background(), entity.KindDelivery, id, entity.StatusCancelled, 9)
	require.NoError(t, err)
	assert.True(t, s.stock[a].OnHand.Equal(qty("3")))
	assert.Empty(t, s.moves)

	_, err = uc.Transition(context.Background(), entity.KindDelivery, id, entity.StatusReady, 9)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestTransitionFromRequest_EstadoDesconocido(t *testing.T) {
	s := newMemStore()
	wh := s.addWarehouse("Principal", "WH")
	id := createDelivery(t, s, wh, item(1, "1"))
	uc, _ := newUseCase(s)

	_, err := uc.TransitionFromRequest(context.Background(), entity.KindDelivery, id, 9, dto.TransitionRequest{Status: "Shipped"})
	var ve *dto.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "oneof", ve.Fields["status"])
}
