package dto

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
type DashboardStatsDTO struct {
	Receipts   ReceiptStatsDTO  `json:"receipts"`
	Deliveries DeliveryStatsDTO `json:"deliveries"`
	Stock      StockStatsDTO    `json:"stock"`
}

// ReceiptStatsDTO tasks = borradores; operations = Ready o Waiting.
type ReceiptStatsDTO struct {
	Total      int64 `json:"total"`
	Tasks      int64 `json:"tasks"`
	Operations int64 `json:"operations"`
}

// DeliveryStatsDTO tasks = borradores; operations = Ready o Done.
type DeliveryStatsDTO struct {
	Total      int64 `json:"total"`
	Tasks      int64 `json:"tasks"`
	Waiting    int64 `json:"waiting"`
	Operations int64 `json:"operations"`
}

// StockStatsDTO bodegas con al menos una fila de stock.
type StockStatsDTO struct {
	Warehouses int64 `json:"warehouses"`
}
