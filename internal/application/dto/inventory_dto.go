package dto

import "time"

// RegisterMovementRequest body para POST /api/inventory/movements.
// Para ADD/REMOVE/SALE: product_id, warehouse_id, type, quantity (positiva).
// Para TRANSFER: product_id, from_warehouse_id, to_warehouse_id, quantity.
type RegisterMovementRequest struct {
	ProductID       string `json:"product_id"`
	WarehouseID     string `json:"warehouse_id,omitempty"`
	FromWarehouseID string `json:"from_warehouse_id,omitempty"`
	ToWarehouseID   string `json:"to_warehouse_id,omitempty"`
	Type            string `json:"type"`
	Quantity        int64  `json:"quantity"`
	Reference       string `json:"reference,omitempty"`
}

// MovementResponse una entrada de la bitácora de movimientos.
type MovementResponse struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transaction_id"`
	ProductID     string    `json:"product_id"`
	WarehouseID   string    `json:"warehouse_id"`
	Type          string    `json:"type"`
	Quantity      int64     `json:"quantity"` // delta con signo
	Reference     string    `json:"reference,omitempty"`
	Date          time.Time `json:"date"`
	CreatedBy     string    `json:"created_by,omitempty"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// StockItemResponse inventario actual de un producto en una bodega.
type StockItemResponse struct {
	ProductID   string    `json:"product_id"`
	WarehouseID string    `json:"warehouse_id"`
	Quantity    int64     `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StockListResponse inventario de una bodega.
type StockListResponse struct {
	Items []StockItemResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
