package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto con su inventario inicial.
// Price es puntero para distinguir "ausente" de cero en la validación.
type CreateProductRequest struct {
	Name              string           `json:"name" validate:"required,min=1,max=200"`
	SKU               string           `json:"sku" validate:"required,min=1,max=100"`
	Description       string           `json:"description"`
	Price             *decimal.Decimal `json:"price"`
	IsBundle          bool             `json:"is_bundle"`
	LowStockThreshold *int             `json:"low_stock_threshold,omitempty"`
	WarehouseID       string           `json:"warehouse_id"`
	InitialQuantity   *int64           `json:"initial_quantity,omitempty"` // default 0
}

// CreateProductData datos del sobre de éxito de la creación.
type CreateProductData struct {
	ProductID string `json:"product_id"`
}

// UpdateProductRequest entrada para actualizar un producto (el stock se maneja vía movimientos).
type UpdateProductRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description       *string          `json:"description"`
	Price             *decimal.Decimal `json:"price"`
	LowStockThreshold *int             `json:"low_stock_threshold"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                string          `json:"id"`
	CompanyID         string          `json:"company_id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price"`
	IsBundle          bool            `json:"is_bundle"`
	LowStockThreshold *int            `json:"low_stock_threshold,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
