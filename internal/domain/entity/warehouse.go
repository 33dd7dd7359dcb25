package entity

import "time"

// Warehouse representa una bodega. ShortCode alimenta las referencias de documentos (WH/OUT/001).
type Warehouse struct {
	ID        int64
	Name      string
	ShortCode string
	Address   string
	CreatedAt time.Time
}

// Location representa una ubicación dentro de una bodega (estante, zona, muelle).
// No puede existir sin su bodega.
type Location struct {
	ID            int64
	Name          string
	ShortCode     string
	WarehouseID   int64
	WarehouseName string // solo lectura (JOIN)
}
