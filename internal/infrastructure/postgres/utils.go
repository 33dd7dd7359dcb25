package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNumericOutOfRange   = "22003"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == codeUniqueViolation
}

// isFKViolation verifica si un error es una violación de llave foránea (23503):
// borrar una bodega con ubicaciones, o referenciar un producto inexistente.
func isFKViolation(err error) bool {
	return pgCode(err) == codeForeignKeyViolation
}

// isInvalidValue valores que la base rechaza por CHECK o por no caber en NUMERIC(p,s).
func isInvalidValue(err error) bool {
	switch pgCode(err) {
	case codeCheckViolation, codeNumericOutOfRange:
		return true
	}
	return false
}
