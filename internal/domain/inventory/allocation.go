// Package inventory servicios de dominio puros sobre cantidades de stock.
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockops-api/internal/domain"
	"github.com/jhoicas/stockops-api/internal/domain/entity"
)

// Allocation cuánto descontar de una fila de stock concreta.
type Allocation struct {
	StockID  int64
	Quantity decimal.Decimal
}

// AllocateOut reparte la salida qty entre las filas de stock (ya ordenadas por id).
// Cada fila aporta hasta su on_hand positivo. Si no alcanza:
//   - allowNegative=false: retorna domain.ErrInsufficientStock;
//   - allowNegative=true: el faltante se carga a la primera fila (queda en negativo)
//     y shortfall informa cuánto faltó.
//
// Sin filas y con allowNegative no hay dónde cargar la salida: también es ErrInsufficientStock.
func AllocateOut(rows []entity.Stock, qty decimal.Decimal, allowNegative bool) (allocs []Allocation, shortfall decimal.Decimal, err error) {
	if !qty.IsPositive() {
		return nil, decimal.Zero, domain.ErrInvalidInput
	}
	remaining := qty
	for _, r := range rows {
		if !remaining.IsPositive() {
			break
		}
		if !r.OnHand.IsPositive() {
			continue
		}
		take := decimal.Min(r.OnHand, remaining)
		allocs = append(allocs, Allocation{StockID: r.ID, Quantity: take})
		remaining = remaining.Sub(take)
	}
	if !remaining.IsPositive() {
		return allocs, decimal.Zero, nil
	}
	if !allowNegative || len(rows) == 0 {
		return nil, remaining, domain.ErrInsufficientStock
	}

	first := rows[0].ID
	for i := range allocs {
		if allocs[i].StockID == first {
			allocs[i].Quantity = allocs[i].Quantity.Add(remaining)
			return allocs, remaining, nil
		}
	}
	allocs = append([]Allocation{{StockID: first, Quantity: remaining}}, allocs...)
	return allocs, remaining, nil
}

// Available suma on_hand de las filas.
func Available(rows []entity.Stock) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.OnHand)
	}
	return total
}
