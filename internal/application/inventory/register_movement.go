package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stock-alerts-api/internal/application/dto"
	"github.com/tu-usuario/stock-alerts-api/internal/domain"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de inventario de forma
// transaccional (ADD, REMOVE, SALE, TRANSFER) con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback. El stock nunca cambia sin su
// registro correspondiente en la bitácora.
type RegisterMovementUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// MovementInput entrada para registrar un movimiento de inventario.
// Para ADD/REMOVE/SALE: ProductID, WarehouseID, Type, Quantity positiva.
// Para TRANSFER: ProductID, FromWarehouseID, ToWarehouseID, Quantity positiva.
type MovementInput struct {
	CompanyID       string
	UserID          string
	ProductID       string
	WarehouseID     string
	FromWarehouseID string
	ToWarehouseID   string
	Type            string
	Quantity        int64
	Reference       string
}

// RegisterMovementFromRequest adapta el request HTTP al caso de uso.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, companyID, userID string, in dto.RegisterMovementRequest) error {
	input := MovementInput{
		CompanyID:       companyID,
		UserID:          userID,
		ProductID:       in.ProductID,
		WarehouseID:     in.WarehouseID,
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		Type:            in.Type,
		Quantity:        in.Quantity,
		Reference:       in.Reference,
	}
	return uc.RegisterMovement(ctx, input)
}

// RegisterMovement inicia una transacción, bloquea la fila de stock
// (SELECT FOR UPDATE), aplica la lógica según tipo y hace Commit o Rollback.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) error {
	// Validar tipo y campos
	switch input.Type {
	case entity.MovementTypeADD, entity.MovementTypeREMOVE, entity.MovementTypeSALE:
		if input.ProductID == "" || input.WarehouseID == "" {
			return domain.ErrInvalidInput
		}
		if input.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeTRANSFER:
		if input.ProductID == "" || input.FromWarehouseID == "" || input.ToWarehouseID == "" {
			return domain.ErrInvalidInput
		}
		if input.FromWarehouseID == input.ToWarehouseID || input.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}

	// Validar que producto y bodega(s) existan y sean de la empresa.
	// Un error del repositorio se propaga tal cual; ErrNotFound queda
	// reservado para filas realmente ausentes.
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.CompanyID != input.CompanyID {
		return domain.ErrForbidden
	}

	if input.Type == entity.MovementTypeTRANSFER {
		fromWh, err := uc.warehouseRepo.GetByID(input.FromWarehouseID)
		if err != nil {
			return err
		}
		toWh, err := uc.warehouseRepo.GetByID(input.ToWarehouseID)
		if err != nil {
			return err
		}
		if fromWh == nil || toWh == nil || fromWh.CompanyID != input.CompanyID || toWh.CompanyID != input.CompanyID {
			return domain.ErrNotFound
		}
	} else {
		wh, err := uc.warehouseRepo.GetByID(input.WarehouseID)
		if err != nil {
			return err
		}
		if wh == nil || wh.CompanyID != input.CompanyID {
			return domain.ErrNotFound
		}
	}

	now := time.Now()
	txID := uuid.New().String()

	// Inicia transacción; Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace)
	return uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
		_ repository.ProductRepository,
	) error {
		switch input.Type {
		case entity.MovementTypeADD:
			return uc.doADD(movRepo, stockRepo, input, now, txID)
		case entity.MovementTypeREMOVE, entity.MovementTypeSALE:
			return uc.doOutbound(movRepo, stockRepo, input, now, txID)
		case entity.MovementTypeTRANSFER:
			return uc.doTRANSFER(movRepo, stockRepo, input, now, txID)
		}
		return domain.ErrInvalidInput
	})
}

// doADD: bloquea la fila de stock, suma la cantidad y guarda el movimiento.
func (uc *RegisterMovementUseCase) doADD(
	movRepo repository.InventoryMovementRepository,
	stockRepo repository.StockRepository,
	input MovementInput,
	now time.Time, txID string,
) error {
	stock, err := stockRepo.GetForUpdate(input.ProductID, input.WarehouseID)
	if err != nil {
		return err
	}
	if stock == nil {
		// Primera entrada del producto en esta bodega: la fila nace aquí.
		stock = &entity.Stock{ProductID: input.ProductID, WarehouseID: input.WarehouseID}
	}
	stock.Quantity += input.Quantity
	stock.UpdatedAt = now
	if err := stockRepo.Upsert(stock); err != nil {
		return err
	}
	mov := &entity.InventoryMovement{
		ID:            uuid.New().String(),
		TransactionID: txID,
		ProductID:     input.ProductID,
		WarehouseID:   input.WarehouseID,
		Type:          entity.MovementTypeADD,
		Quantity:      input.Quantity,
		Reference:     input.Reference,
		Date:          now,
		CreatedAt:     now,
		CreatedBy:     input.UserID,
	}
	return movRepo.Create(mov)
}

// doOutbound: bloquea la fila, verifica stock suficiente, resta la cantidad y
// guarda el movimiento con delta negativo. Cubre REMOVE y SALE.
func (uc *RegisterMovementUseCase) doOutbound(
	movRepo repository.InventoryMovementRepository,
	stockRepo repository.StockRepository,
	input MovementInput,
	now time.Time, txID string,
) error {
	stock, err := stockRepo.GetForUpdate(input.ProductID, input.WarehouseID)
	if err != nil {
		return err
	}
	if stock == nil || stock.Quantity < input.Quantity {
		return domain.ErrInsufficientStock
	}
	stock.Quantity -= input.Quantity
	stock.UpdatedAt = now
	if err := stockRepo.Upsert(stock); err != nil {
		return err
	}
	mov := &entity.InventoryMovement{
		ID:            uuid.New().String(),
		TransactionID: txID,
		ProductID:     input.ProductID,
		WarehouseID:   input.WarehouseID,
		Type:          input.Type,
		Quantity:      -input.Quantity,
		Reference:     input.Reference,
		Date:          now,
		CreatedAt:     now,
		CreatedBy:     input.UserID,
	}
	return movRepo.Create(mov)
}

// doTRANSFER: resta de bodega origen, suma en bodega destino, misma
// transacción; guarda dos registros en la bitácora con el mismo TransactionID.
func (uc *RegisterMovementUseCase) doTRANSFER(
	movRepo repository.InventoryMovementRepository,
	stockRepo repository.StockRepository,
	input MovementInput,
	now time.Time, txID string,
) error {
	origin, err := stockRepo.GetForUpdate(input.ProductID, input.FromWarehouseID)
	if err != nil {
		return err
	}
	if origin == nil || origin.Quantity < input.Quantity {
		return domain.ErrInsufficientStock
	}
	dest, err := stockRepo.GetForUpdate(input.ProductID, input.ToWarehouseID)
	if err != nil {
		return err
	}
	if dest == nil {
		dest = &entity.Stock{ProductID: input.ProductID, WarehouseID: input.ToWarehouseID}
	}
	origin.Quantity -= input.Quantity
	dest.Quantity += input.Quantity
	origin.UpdatedAt = now
	dest.UpdatedAt = now
	if err := stockRepo.Upsert(origin); err != nil {
		return err
	}
	if err := stockRepo.Upsert(dest); err != nil {
		return err
	}
	outMov := &entity.InventoryMovement{
		ID:            uuid.New().String(),
		TransactionID: txID,
		ProductID:     input.ProductID,
		WarehouseID:   input.FromWarehouseID,
		Type:          entity.MovementTypeTRANSFER,
		Quantity:      -input.Quantity,
		Reference:     input.Reference,
		Date:          now,
		CreatedAt:     now,
		CreatedBy:     input.UserID,
	}
	if err := movRepo.Create(outMov); err != nil {
		return err
	}
	inMov := &entity.InventoryMovement{
		ID:            uuid.New().String(),
		TransactionID: txID,
		ProductID:     input.ProductID,
		WarehouseID:   input.ToWarehouseID,
		Type:          entity.MovementTypeTRANSFER,
		Quantity:      input.Quantity,
		Reference:     input.Reference,
		Date:          now,
		CreatedAt:     now,
		CreatedBy:     input.UserID,
	}
	return movRepo.Create(inMov)
}
