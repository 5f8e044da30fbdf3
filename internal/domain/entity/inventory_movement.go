package entity

import "time"

// Tipos de movimiento de inventario (bitácora append-only).
const (
	MovementTypeADD      = "ADD"      // entrada
	MovementTypeREMOVE   = "REMOVE"   // salida (merma, ajuste negativo)
	MovementTypeSALE     = "SALE"     // salida por venta; alimenta la ventana de ventas recientes
	MovementTypeTRANSFER = "TRANSFER" // traslado entre bodegas (dos registros)
)

// InventoryMovement representa un cambio de inventario. Nunca se actualiza ni
// elimina después de creado: es la pista de auditoría del stock.
type InventoryMovement struct {
	ID            string
	TransactionID string
	ProductID     string
	WarehouseID   string
	Type          string
	Quantity      int64 // delta con signo: positivo entrada, negativo salida
	Reference     string
	Date          time.Time
	CreatedAt     time.Time
	CreatedBy     string
}
