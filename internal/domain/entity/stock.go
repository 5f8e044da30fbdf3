package entity

import "time"

// Stock representa el inventario actual de un producto en una bodega.
// El par (producto, bodega) es único (PK en DB). La cantidad nunca es
// negativa y solo se modifica junto con un InventoryMovement.
type Stock struct {
	ProductID   string
	WarehouseID string
	Quantity    int64
	UpdatedAt   time.Time
}
