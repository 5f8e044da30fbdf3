package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/stock-alerts-api/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación del puerto para la bitácora de
// movimientos. Append-only: no hay UPDATE ni DELETE.
type InventoryMovementRepo struct {
	db Querier
}

// NewInventoryMovementRepository construye el adaptador de la bitácora.
func NewInventoryMovementRepository(db Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{db: db}
}

// Create inserta un movimiento de inventario.
func (r *InventoryMovementRepo) Create(movement *entity.InventoryMovement) error {
	query := `
		INSERT INTO inventory_movements (id, transaction_id, product_id, warehouse_id, type, quantity, reference, date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(context.Background(), query,
		movement.ID, movement.TransactionID, movement.ProductID, movement.WarehouseID,
		movement.Type, movement.Quantity, movement.Reference,
		movement.Date, movement.CreatedAt, movement.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *InventoryMovementRepo) GetByID(id string) (*entity.InventoryMovement, error) {
	query := `
		SELECT id, transaction_id, product_id, warehouse_id, type, quantity, reference, date, created_at, created_by
		FROM inventory_movements WHERE id = $1`
	var m entity.InventoryMovement
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.TransactionID, &m.ProductID, &m.WarehouseID,
		&m.Type, &m.Quantity, &m.Reference, &m.Date, &m.CreatedAt, &m.CreatedBy,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// ListByWarehouse lista movimientos de una bodega, opcionalmente filtrados por rango de fechas.
func (r *InventoryMovementRepo) ListByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error) {
	return r.list(`warehouse_id`, warehouseID, from, to, limit, offset)
}

// ListByProduct lista movimientos de un producto, opcionalmente filtrados por rango de fechas.
func (r *InventoryMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error) {
	return r.list(`product_id`, productID, from, to, limit, offset)
}

func (r *InventoryMovementRepo) list(column, id string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error) {
	query := `
		SELECT id, transaction_id, product_id, warehouse_id, type, quantity, reference, date, created_at, created_by
		FROM inventory_movements
		WHERE ` + column + ` = $1
		  AND ($2::timestamptz IS NULL OR date >= $2)
		  AND ($3::timestamptz IS NULL OR date <= $3)
		ORDER BY date DESC, created_at DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.db.Query(context.Background(), query, id, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		if err := rows.Scan(&m.ID, &m.TransactionID, &m.ProductID, &m.WarehouseID, &m.Type, &m.Quantity, &m.Reference, &m.Date, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
