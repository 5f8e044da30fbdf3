package repository

import "context"

// LowStockRow resultado crudo del repositorio para la evaluación de alertas:
// una fila de inventario con su producto, bodega, primer proveedor asociado
// (si existe) y el total vendido en la ventana de ventas recientes.
type LowStockRow struct {
	ProductID     string
	SKU           string
	ProductName   string
	WarehouseID   string
	WarehouseName string
	Quantity      int64
	// Threshold umbral propio del producto; nil si no tiene override.
	Threshold *int
	// Primer proveedor asociado al producto (por fecha de asociación); todos
	// nil si el producto no tiene proveedores.
	SupplierID    *string
	SupplierName  *string
	SupplierEmail *string
	SupplierPhone *string
	// SoldInWindow unidades SALE (valor absoluto) en la ventana consultada.
	SoldInWindow int64
}

// AlertRepository define la consulta de lectura para el evaluador de stock
// bajo. Las implementaciones son read-only y devuelven las filas ordenadas
// por bodega y producto para resultados reproducibles.
type AlertRepository interface {
	// ListCompanyStock devuelve todas las filas de inventario de las bodegas
	// de la empresa, enriquecidas para la evaluación. windowDays controla la
	// ventana del agregado de ventas.
	ListCompanyStock(ctx context.Context, companyID string, windowDays int) ([]LowStockRow, error)
}
