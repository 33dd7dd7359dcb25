package repository

import "context"

// ReceiptCounts conteos de recepciones para el dashboard.
type ReceiptCounts struct {
	Total      int64
	Tasks      int64 // Draft
	Operations int64 // Ready o Waiting
}

// DeliveryCounts conteos de entregas para el dashboard.
type DeliveryCounts struct {
	Total      int64
	Tasks      int64 // Draft
	Waiting    int64
	Operations int64 // Ready o Done
}

// StockCounts conteos de stock para el dashboard.
type StockCounts struct {
	Warehouses int64 // bodegas distintas con filas de stock
}

// DashboardRepository consultas read-only de los contadores del dashboard.
type DashboardRepository interface {
	ReceiptCounts(ctx context.Context) (ReceiptCounts, error)
	DeliveryCounts(ctx context.Context) (DeliveryCounts, error)
	StockCounts(ctx context.Context) (StockCounts, error)
}
