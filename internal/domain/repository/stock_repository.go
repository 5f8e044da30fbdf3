package repository

import "github.com/tu-usuario/stock-alerts-api/internal/domain/entity"

// StockRepository define el puerto para el inventario por producto+bodega.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) dentro de una transacción.
type StockRepository interface {
	Get(productID, warehouseID string) (*entity.Stock, error)
	GetForUpdate(productID, warehouseID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Stock, error)
}
