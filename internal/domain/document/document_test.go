package document_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stockops-api/internal/domain/document"
	"github.com/jhoicas/stockops-api/internal/domain/entity"
)

func TestFormatReference_RellenaATresDigitos(t *testing.T) {
	assert.Equal(t, "WH1/OUT/008", document.FormatReference("WH1", entity.DirectionOut, 8))
	assert.Equal(t, "WH/IN/042", document.FormatReference("WH", entity.DirectionIn, 42))
	assert.Equal(t, "WH/OUT/999", document.FormatReference("WH", entity.DirectionOut, 999))
}

func TestFormatReference_CreceSobre999(t *testing.T) {
	assert.Equal(t, "WH/OUT/1000", document.FormatReference("WH", entity.DirectionOut, 1000))
	assert.Equal(t, "WH/OUT/123456", document.FormatReference("WH", entity.DirectionOut, 123456))
}

func TestFormatReference_UnicasYConFormato(t *testing.T) {
	re := regexp.MustCompile(`^WH1/OUT/\d{3,}$`)
	seen := map[string]bool{}
	for id := int64(1); id <= 2500; id++ {
		ref := document.FormatReference("WH1", entity.DirectionOut, id)
		assert.Regexp(t, re, ref)
		assert.False(t, seen[ref], "referencia repetida: %s", ref)
		seen[ref] = true
	}
	assert.NotRegexp(t, re, entity.PlaceholderReference)
}

func TestCanTransition_SoloHaciaAdelante(t *testing.T) {
	cases := []struct {
		from, to entity.DocumentStatus
		ok       bool
	}{
		{entity.StatusDraft, entity.StatusWaiting, true},
		{entity.StatusDraft, entity.StatusReady, true},
		{entity.StatusDraft, entity.StatusDone, true},
		{entity.StatusWaiting, entity.StatusReady, true},
		{entity.StatusReady, entity.StatusDone, true},
		{entity.StatusReady, entity.StatusWaiting, false},
		{entity.StatusWaiting, entity.StatusDraft, false},
		{entity.StatusDraft, entity.StatusDraft, false},
		{entity.StatusReady, entity.StatusReady, false},
		{entity.StatusDraft, entity.StatusCancelled, true},
		{entity.StatusReady, entity.StatusCancelled, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, document.CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestCanTransition_DoneEsTerminal(t *testing.T) {
	for _, to := range []entity.DocumentStatus{
		entity.StatusDraft, entity.StatusWaiting, entity.StatusReady, entity.StatusDone, entity.StatusCancelled,
	} {
		assert.False(t, document.CanTransition(entity.StatusDone, to), "Done -> %s", to)
		assert.False(t, document.CanTransition(entity.StatusCancelled, to), "Cancelled -> %s", to)
	}
}

func TestParseStatus(t *testing.T) {
	st, ok := document.ParseStatus("Ready")
	assert.True(t, ok)
	assert.Equal(t, entity.StatusReady, st)

	_, ok = document.ParseStatus("In Progress")
	assert.False(t, ok)
	_, ok = document.ParseStatus("done")
	assert.False(t, ok)

	_, ok = document.ParseStatus("Cancelled")
	assert.True(t, ok)
}
