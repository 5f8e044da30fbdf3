package inventory

import (
	"time"

	"github.com/tu-usuario/stock-alerts-api/internal/application/dto"
	"github.com/tu-usuario/stock-alerts-api/internal/domain"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/repository"
)

// QueryUseCase consultas de solo lectura sobre bitácora e inventario.
type QueryUseCase struct {
	movRepo       repository.InventoryMovementRepository
	stockRepo     repository.StockRepository
	warehouseRepo repository.WarehouseRepository
	productRepo   repository.ProductRepository
}

// NewQueryUseCase construye el caso de uso de consultas.
func NewQueryUseCase(
	movRepo repository.InventoryMovementRepository,
	stockRepo repository.StockRepository,
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
) *QueryUseCase {
	return &QueryUseCase{
		movRepo:       movRepo,
		stockRepo:     stockRepo,
		warehouseRepo: warehouseRepo,
		productRepo:   productRepo,
	}
}

// ListWarehouseMovements lista la bitácora de una bodega de la empresa,
// opcionalmente acotada por rango de fechas.
func (uc *QueryUseCase) ListWarehouseMovements(companyID, warehouseID string, from, to *time.Time, limit, offset int) (*dto.MovementListResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if warehouse.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	movements, err := uc.movRepo.ListByWarehouse(warehouseID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementList(movements, limit, offset), nil
}

// ListProductMovements lista la bitácora de un producto de la empresa.
func (uc *QueryUseCase) ListProductMovements(companyID, productID string, from, to *time.Time, limit, offset int) (*dto.MovementListResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	movements, err := uc.movRepo.ListByProduct(productID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementList(movements, limit, offset), nil
}

// GetWarehouseStock lista el inventario actual de una bodega de la empresa.
func (uc *QueryUseCase) GetWarehouseStock(companyID, warehouseID string, limit, offset int) (*dto.StockListResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if warehouse.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	stocks, err := uc.stockRepo.ListByWarehouse(warehouseID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockItemResponse, 0, len(stocks))
	for _, s := range stocks {
		items = append(items, dto.StockItemResponse{
			ProductID:   s.ProductID,
			WarehouseID: s.WarehouseID,
			Quantity:    s.Quantity,
			UpdatedAt:   s.UpdatedAt,
		})
	}
	return &dto.StockListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toMovementList(movements []*entity.InventoryMovement, limit, offset int) *dto.MovementListResponse {
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, dto.MovementResponse{
			ID:            m.ID,
			TransactionID: m.TransactionID,
			ProductID:     m.ProductID,
			WarehouseID:   m.WarehouseID,
			Type:          m.Type,
			Quantity:      m.Quantity,
			Reference:     m.Reference,
			Date:          m.Date,
			CreatedBy:     m.CreatedBy,
		})
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
