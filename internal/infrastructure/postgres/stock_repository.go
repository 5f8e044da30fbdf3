package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/stock-alerts-api/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del puerto StockRepository sobre PostgreSQL.
type StockRepo struct {
	db Querier
}

// NewStockRepository construye el adaptador de persistencia para inventario.
func NewStockRepository(db Querier) *StockRepo {
	return &StockRepo{db: db}
}

const stockSelect = `
	SELECT product_id, warehouse_id, quantity, updated_at
	FROM stock WHERE product_id = $1 AND warehouse_id = $2`

// Get obtiene el inventario de un producto en una bodega; nil si no hay fila.
func (r *StockRepo) Get(productID, warehouseID string) (*entity.Stock, error) {
	return r.scan(productID, warehouseID, stockSelect)
}

// GetForUpdate obtiene el inventario bloqueando la fila con SELECT FOR UPDATE.
// Solo tiene sentido dentro de una transacción: el lock serializa los
// movimientos concurrentes sobre el mismo par producto+bodega.
func (r *StockRepo) GetForUpdate(productID, warehouseID string) (*entity.Stock, error) {
	return r.scan(productID, warehouseID, stockSelect+` FOR UPDATE`)
}

func (r *StockRepo) scan(productID, warehouseID, query string) (*entity.Stock, error) {
	var s entity.Stock
	err := r.db.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&s.ProductID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la fila de inventario (PK producto+bodega).
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.db.Exec(context.Background(), query,
		stock.ProductID, stock.WarehouseID, stock.Quantity, stock.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByWarehouse lista el inventario de una bodega con paginación.
func (r *StockRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Stock, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM stock WHERE warehouse_id = $1 ORDER BY product_id LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(context.Background(), query, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ProductID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
