package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestCodigosPostgres(t *testing.T) {
	wrap := func(code string) error {
		return fmt.Errorf("insert: %w", &pgconn.PgError{Code: code})
	}
	assert.True(t, isUniqueViolation(wrap("23505")))
	assert.True(t, isFKViolation(wrap("23503")))
	assert.True(t, isInvalidValue(wrap("23514")))
	assert.True(t, isInvalidValue(wrap("22003")))
	assert.False(t, isInvalidValue(wrap("23505")))
	assert.False(t, isInvalidValue(errors.New("conexión perdida")))
}
