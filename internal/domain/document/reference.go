package document

import (
	"fmt"

	"github.com/jhoicas/stockops-api/internal/domain/entity"
)

// minSequenceWidth ancho mínimo del consecutivo; crece solo si el id pasa de 999.
const minSequenceWidth = 3

// FormatReference arma la referencia legible {short_code}/{IN|OUT}/{id con ceros}.
// El consecutivo es el id asignado por la base de datos al documento, no un contador por bodega.
func FormatReference(shortCode string, dir entity.Direction, id int64) string {
	return fmt.Sprintf("%s/%s/%0*d", shortCode, dir, minSequenceWidth, id)
}
