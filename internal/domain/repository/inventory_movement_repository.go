package repository

import (
	"time"

	"github.com/tu-usuario/stock-alerts-api/internal/domain/entity"
)

// InventoryMovementRepository define el puerto de persistencia para la
// bitácora de movimientos. Solo inserta y consulta: los registros son
// append-only.
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	GetByID(id string) (*entity.InventoryMovement, error)
	ListByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error)
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error)
}
