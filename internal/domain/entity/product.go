package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del inventario (multi-bodega).
// El SKU es único por empresa (constraint en DB). El stock se maneja por
// bodega en Stock y solo cambia vía movimientos.
type Product struct {
	ID          string
	CompanyID   string
	SKU         string // código único por empresa
	Name        string
	Description string
	Price       decimal.Decimal
	IsBundle    bool // producto compuesto; su stock derivado no se almacena
	// LowStockThreshold umbral propio del producto; nil usa el umbral global
	// configurado para la evaluación de alertas.
	LowStockThreshold *int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
