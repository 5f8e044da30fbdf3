package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo consulta de lectura para el evaluador de stock bajo. Una sola
// query trae inventario + producto + bodega + primer proveedor + ventas de la
// ventana, para que el caso de uso evalúe en memoria sin N+1.
type AlertRepo struct {
	pool *pgxpool.Pool
}

// NewAlertRepository construye el adaptador de lectura de alertas.
func NewAlertRepository(pool *pgxpool.Pool) *AlertRepo {
	return &AlertRepo{pool: pool}
}

// ListCompanyStock devuelve todas las filas de inventario de las bodegas de
// la empresa. El primer proveedor se resuelve por fecha de asociación (empate
// por id para orden estable). SoldInWindow suma las unidades SALE (los deltas
// SALE son negativos, de ahí el -quantity) dentro de la ventana.
func (r *AlertRepo) ListCompanyStock(ctx context.Context, companyID string, windowDays int) ([]repository.LowStockRow, error) {
	query := `
		SELECT
			p.id, p.sku, p.name,
			w.id, w.name,
			s.quantity,
			p.low_stock_threshold,
			sp.id, sp.name, sp.contact_email, sp.contact_phone,
			COALESCE(sales.sold, 0)
		FROM stock s
		JOIN warehouses w ON w.id = s.warehouse_id
		JOIN products p ON p.id = s.product_id
		LEFT JOIN LATERAL (
			SELECT sup.id, sup.name, sup.contact_email, sup.contact_phone
			FROM product_suppliers ps
			JOIN suppliers sup ON sup.id = ps.supplier_id
			WHERE ps.product_id = p.id
			ORDER BY ps.created_at, sup.id
			LIMIT 1
		) sp ON true
		LEFT JOIN LATERAL (
			SELECT SUM(-m.quantity) AS sold
			FROM inventory_movements m
			WHERE m.product_id = p.id
			  AND m.type = 'SALE'
			  AND m.date >= now() - make_interval(days => $2)
		) sales ON true
		WHERE w.company_id = $1
		ORDER BY w.id, p.id`
	rows, err := r.pool.Query(ctx, query, companyID, windowDays)
	if err != nil {
		return nil, fmt.Errorf("list company stock: %w", err)
	}
	defer rows.Close()

	var list []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(
			&row.ProductID, &row.SKU, &row.ProductName,
			&row.WarehouseID, &row.WarehouseName,
			&row.Quantity, &row.Threshold,
			&row.SupplierID, &row.SupplierName, &row.SupplierEmail, &row.SupplierPhone,
			&row.SoldInWindow,
		); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
