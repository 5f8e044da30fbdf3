package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stock-alerts-api/internal/application/dto"
	"github.com/tu-usuario/stock-alerts-api/internal/application/inventory"
	"github.com/tu-usuario/stock-alerts-api/internal/domain"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/repository"
)

// ProductUseCase casos de uso para productos. La creación es transaccional:
// producto + fila de stock inicial + movimiento ADD en una sola unidad.
type ProductUseCase struct {
	txRunner      inventory.TxRunner
	repo          repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	txRunner inventory.TxRunner,
	repo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, repo: repo, warehouseRepo: warehouseRepo}
}

// Create valida la petición completa antes de tocar la base, y crea el
// producto con su inventario inicial (default 0) y el movimiento ADD de alta
// dentro de una transacción: si algo falla, nada queda persistido.
// El SKU duplicado lo decide el constraint único de la DB (domain.ErrDuplicate);
// el pre-chequeo por SKU es solo para responder rápido sin abrir transacción.
func (uc *ProductUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateProductRequest) (*dto.CreateProductData, error) {
	var fields []string
	if strings.TrimSpace(in.Name) == "" {
		fields = append(fields, "name")
	}
	if strings.TrimSpace(in.SKU) == "" {
		fields = append(fields, "sku")
	}
	if in.Price == nil || in.Price.IsNegative() {
		fields = append(fields, "price")
	}
	if in.InitialQuantity != nil && *in.InitialQuantity < 0 {
		fields = append(fields, "initial_quantity")
	}
	if in.LowStockThreshold != nil && *in.LowStockThreshold < 0 {
		fields = append(fields, "low_stock_threshold")
	}
	if in.WarehouseID == "" {
		fields = append(fields, "warehouse_id")
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields...)
	}

	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil || warehouse.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	existing, err := uc.repo.GetByCompanyAndSKU(companyID, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	initialQty := int64(0)
	if in.InitialQuantity != nil {
		initialQty = *in.InitialQuantity
	}

	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		SKU:               in.SKU,
		Name:              in.Name,
		Description:       in.Description,
		Price:             *in.Price,
		IsBundle:          in.IsBundle,
		LowStockThreshold: in.LowStockThreshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		stock := &entity.Stock{
			ProductID:   product.ID,
			WarehouseID: in.WarehouseID,
			Quantity:    initialQty,
			UpdatedAt:   now,
		}
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}
		// La bitácora registra la cantidad inicial, incluso cero, para que
		// todo stock existente tenga su rastro de auditoría desde el alta.
		mov := &entity.InventoryMovement{
			ID:            uuid.New().String(),
			TransactionID: product.ID,
			ProductID:     product.ID,
			WarehouseID:   in.WarehouseID,
			Type:          entity.MovementTypeADD,
			Quantity:      initialQty,
			Reference:     "alta de producto",
			Date:          now,
			CreatedAt:     now,
			CreatedBy:     userID,
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreateProductData{ProductID: product.ID}, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. El stock no se toca aquí: se maneja vía movimientos.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.NewValidationError("price")
		}
		product.Price = *in.Price
	}
	if in.LowStockThreshold != nil {
		if *in.LowStockThreshold < 0 {
			return nil, domain.NewValidationError("low_stock_threshold")
		}
		product.LowStockThreshold = in.LowStockThreshold
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos por empresa con paginación.
func (uc *ProductUseCase) List(companyID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                p.ID,
		CompanyID:         p.CompanyID,
		SKU:               p.SKU,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		IsBundle:          p.IsBundle,
		LowStockThreshold: p.LowStockThreshold,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
