// Package analytics contiene los casos de uso de lectura para el dashboard de operaciones.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockops-api/internal/application/dto"
	"github.com/jhoicas/stockops-api/internal/domain/repository"
)

// DashboardUseCase arma los contadores de recepciones, entregas y stock.
//
// Fuente de datos: DashboardRepository (consultas read-only).
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetStats construye el DashboardStatsDTO.
//
// Tres consultas en paralelo:
//  1. ReceiptCounts  → receipts
//  2. DeliveryCounts → deliveries
//  3. StockCounts    → stock
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	type receiptsResult struct {
		c   repository.ReceiptCounts
		err error
	}
	type deliveriesResult struct {
		c   repository.DeliveryCounts
		err error
	}
	type stockResult struct {
		c   repository.StockCounts
		err error
	}

	receiptsCh := make(chan receiptsResult, 1)
	deliveriesCh := make(chan deliveriesResult, 1)
	stockCh := make(chan stockResult, 1)

	go func() {
		c, err := uc.repo.ReceiptCounts(ctx)
		receiptsCh <- receiptsResult{c, err}
	}()
	go func() {
		c, err := uc.repo.DeliveryCounts(ctx)
		deliveriesCh <- deliveriesResult{c, err}
	}()
	go func() {
		c, err := uc.repo.StockCounts(ctx)
		stockCh <- stockResult{c, err}
	}()

	receipts := <-receiptsCh
	deliveries := <-deliveriesCh
	stock := <-stockCh

	if receipts.err != nil {
		return nil, fmt.Errorf("dashboard: recepciones: %w", receipts.err)
	}
	if deliveries.err != nil {
		return nil, fmt.Errorf("dashboard: entregas: %w", deliveries.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: stock: %w", stock.err)
	}

	return &dto.DashboardStatsDTO{
		Receipts: dto.ReceiptStatsDTO{
			Total:      receipts.c.Total,
			Tasks:      receipts.c.Tasks,
			Operations: receipts.c.Operations,
		},
		Deliveries: dto.DeliveryStatsDTO{
			Total:      deliveries.c.Total,
			Tasks:      deliveries.c.Tasks,
			Waiting:    deliveries.c.Waiting,
			Operations: deliveries.c.Operations,
		},
		Stock: dto.StockStatsDTO{Warehouses: stock.c.Warehouses},
	}, nil
}
