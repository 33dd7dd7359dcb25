// Package document contiene las reglas puras del ciclo de vida de entregas y recepciones:
// la máquina de estados y el formato de referencias.
package document

import "github.com/jhoicas/stockops-api/internal/domain/entity"

// rank posición de cada estado en el orden canónico Draft → Waiting → Ready → Done.
// Cancelled queda fuera del orden: es un terminal lateral.
var rank = map[entity.DocumentStatus]int{
	entity.StatusDraft:   0,
	entity.StatusWaiting: 1,
	entity.StatusReady:   2,
	entity.StatusDone:    3,
}

// ParseStatus valida un estado recibido desde la API.
func ParseStatus(s string) (entity.DocumentStatus, bool) {
	st := entity.DocumentStatus(s)
	if st == entity.StatusCancelled {
		return st, true
	}
	_, ok := rank[st]
	return st, ok
}

// IsTerminal indica si el estado ya no admite transiciones.
func IsTerminal(s entity.DocumentStatus) bool {
	return s == entity.StatusDone || s == entity.StatusCancelled
}

// CanTransition aplica la regla "solo hacia adelante":
//   - el destino debe estar estrictamente después del actual (se permite saltar estados);
//   - Cancelled es alcanzable desde cualquier estado no terminal;
//   - Done y Cancelled no aceptan más transiciones.
func CanTransition(from, to entity.DocumentStatus) bool {
	if IsTerminal(from) {
		return false
	}
	if to == entity.StatusCancelled {
		_, ok := rank[from]
		return ok
	}
	fr, ok := rank[from]
	if !ok {
		return false
	}
	tr, ok := rank[to]
	if !ok {
		return false
	}
	return tr > fr
}
