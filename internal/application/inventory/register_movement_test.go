package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-alerts-api/internal/domain"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type movStore struct {
	products  map[string]*entity.Product
	stock     map[string]*entity.Stock
	movements []*entity.InventoryMovement
}

func key(productID, warehouseID string) string { return productID + "|" + warehouseID }

type movProductRepo struct{ store *movStore }

func (r *movProductRepo) Create(p *entity.Product) error { r.store.products[p.ID] = p; return nil }
func (r *movProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.store.products[id], nil
}
func (r *movProductRepo) GetByCompanyAndSKU(string, string) (*entity.Product, error) {
	return nil, nil
}
func (r *movProductRepo) Update(*entity.Product) error { return nil }
func (r *movProductRepo) ListByCompany(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *movProductRepo) Delete(string) error { return nil }

type movStockRepo struct{ store *movStore }

func (r *movStockRepo) Get(productID, warehouseID string) (*entity.Stock, error) {
	return r.store.stock[key(productID, warehouseID)], nil
}
func (r *movStockRepo) GetForUpdate(productID, warehouseID string) (*entity.Stock, error) {
	return r.Get(productID, warehouseID)
}
func (r *movStockRepo) Upsert(s *entity.Stock) error {
	cp := *s
	r.store.stock[key(s.ProductID, s.WarehouseID)] = &cp
	return nil
}
func (r *movStockRepo) ListByWarehouse(string, int, int) ([]*entity.Stock, error) { return nil, nil }

type movMovementRepo struct{ store *movStore }

func (r *movMovementRepo) Create(m *entity.InventoryMovement) error {
	cp := *m
	r.store.movements = append(r.store.movements, &cp)
	return nil
}
func (r *movMovementRepo) GetByID(string) (*entity.InventoryMovement, error) { return nil, nil }
func (r *movMovementRepo) ListByWarehouse(string, *time.Time, *time.Time, int, int) ([]*entity.InventoryMovement, error) {
	return nil, nil
}
func (r *movMovementRepo) ListByProduct(string, *time.Time, *time.Time, int, int) ([]*entity.InventoryMovement, error) {
	return nil, nil
}

type movWarehouseRepo struct{ warehouses map[string]*entity.Warehouse }

func (r *movWarehouseRepo) Create(*entity.Warehouse) error { return nil }
func (r *movWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}
func (r *movWarehouseRepo) Update(*entity.Warehouse) error { return nil }
func (r *movWarehouseRepo) ListByCompany(string, int, int) ([]*entity.Warehouse, error) {
	return nil, nil
}
func (r *movWarehouseRepo) Delete(string) error { return nil }

type movTxRunner struct{ store *movStore }

func (t *movTxRunner) Run(_ context.Context, fn func(
	movRepo repository.InventoryMovementRepository,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
) error) error {
	snapshot := &movStore{products: t.store.products, stock: map[string]*entity.Stock{}}
	for k, v := range t.store.stock {
		cp := *v
		snapshot.stock[k] = &cp
	}
	snapshot.movements = append(snapshot.movements, t.store.movements...)

	if err := fn(&movMovementRepo{snapshot}, &movStockRepo{snapshot}, &movProductRepo{snapshot}); err != nil {
		return err // rollback
	}
	*t.store = *snapshot
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	company  = "co-1"
	user     = "u-1"
	product  = "p-1"
	whOrigin = "w-1"
	whDest   = "w-2"
)

func newMovementTestUseCase(initialStock int64) (*RegisterMovementUseCase, *movStore) {
	store := &movStore{
		products: map[string]*entity.Product{
			product: {ID: product, CompanyID: company, SKU: "SKU-1", Name: "Producto"},
		},
		stock: map[string]*entity.Stock{},
	}
	if initialStock >= 0 {
		store.stock[key(product, whOrigin)] = &entity.Stock{
			ProductID: product, WarehouseID: whOrigin, Quantity: initialStock,
		}
	}
	warehouseRepo := &movWarehouseRepo{warehouses: map[string]*entity.Warehouse{
		whOrigin: {ID: whOrigin, CompanyID: company},
		whDest:   {ID: whDest, CompanyID: company},
	}}
	uc := NewRegisterMovementUseCase(&movTxRunner{store}, &movProductRepo{store}, warehouseRepo)
	return uc, store
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_ADD_SumaYRegistra(t *testing.T) {
	uc, store := newMovementTestUseCase(10)

	err := uc.RegisterMovement(context.Background(), MovementInput{
		CompanyID: company, UserID: user, ProductID: product,
		WarehouseID: whOrigin, Type: entity.MovementTypeADD, Quantity: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(15), store.stock[key(product, whOrigin)].Quantity)
	require.Len(t, store.movements, 1)
	assert.Equal(t, int64(5), store.movements[0].Quantity, "ADD guarda delta positivo")
	assert.Equal(t, user, store.movements[0].CreatedBy)
}

// ADD a una bodega sin fila previa de stock crea la fila.
func TestRegisterMovement_ADD_SinFilaPrevia(t *testing.T) {
	uc, store := newMovementTestUseCase(-1) // sin stock inicial

	err := uc.RegisterMovement(context.Background(), MovementInput{
		CompanyID: company, UserID: user, ProductID: product,
		WarehouseID: whOrigin, Type: entity.MovementTypeADD, Quantity: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), store.stock[key(product, whOrigin)].Quantity)
}

func TestRegisterMovement_SALE_GuardaDeltaNegativo(t *testing.T) {
	uc, store := newMovementTestUseCase(10)

	err := uc.RegisterMovement(context.Background(), MovementInput{
		CompanyID: company, UserID: user, ProductID: product,
		WarehouseID: whOrigin, Type: entity.MovementTypeSALE, Quantity: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(6), store.stock[key(product, whOrigin)].Quantity)
	require.Len(t, store.movements, 1)
	assert.Equal(t, entity.MovementTypeSALE, store.movements[0].Type)
	assert.Equal(t, int64(-4), store.movements[0].Quantity, "las salidas guardan delta negativo")
}

func TestRegisterMovement_REMOVE_StockInsuficiente(t *testing.T) {
	uc, store := newMovementTestUseCase(3)

	err := uc.RegisterMovement(context.Background(), MovementInput{
		CompanyID: company, UserID: user, ProductID: product,
		WarehouseID: whOrigin, Type: entity.MovementTypeREMOVE, Quantity: 5,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(3), store.stock[key(product, whOrigin)].Quantity, "rollback: el stock no cambia")
	assert.Empty(t, store.movements, "rollback: la bitácora no registra nada")
}

func TestRegisterMovement_TRANSFER_MueveYRegistraDos(t *testing.T) {
	uc, store := newMovementTestUseCase(10)

	err := uc.RegisterMovement(context.Background(), MovementInput{
		CompanyID: company, UserID: user, ProductID: product,
		FromWarehouseID: whOrigin, ToWarehouseID: whDest,
		Type: entity.MovementTypeTRANSFER, Quantity: 6,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), store.stock[key(product, whOrigin)].Quantity)
	assert.Equal(t, int64(6), store.stock[key(product, whDest)].Quantity)

	require.Len(t, store.movements, 2, "TRANSFER produce dos registros")
	out, in := store.movements[0], store.movements[1]
	assert.Equal(t, int64(-6), out.Quantity)
	assert.Equal(t, whOrigin, out.WarehouseID)
	assert.Equal(t, int64(6), in.Quantity)
	assert.Equal(t, whDest, in.WarehouseID)
	assert.Equal(t, out.TransactionID, in.TransactionID, "ambos registros comparten TransactionID")
}

func TestRegisterMovement_TRANSFER_MismaBodega_Invalido(t *testing.T) {
	uc, _ := newMovementTestUseCase(10)

	err := uc.RegisterMovement(context.Background(), MovementInput{
		CompanyID: company, UserID: user, ProductID: product,
		FromWarehouseID: whOrigin, ToWarehouseID: whOrigin,
		Type: entity.MovementTypeTRANSFER, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_CantidadNoPositiva_Invalida(t *testing.T) {
	uc, _ := newMovementTestUseCase(10)

	for _, qty := range []int64{0, -3} {
		err := uc.RegisterMovement(context.Background(), MovementInput{
			CompanyID: company, UserID: user, ProductID: product,
			WarehouseID: whOrigin, Type: entity.MovementTypeADD, Quantity: qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", qty)
	}
}

func TestRegisterMovement_TipoDesconocido_Invalido(t *testing.T) {
	uc, _ := newMovementTestUseCase(10)

	err := uc.RegisterMovement(context.Background(), MovementInput{
		CompanyID: company, UserID: user, ProductID: product,
		WarehouseID: whOrigin, Type: "AJUSTE", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cada registro de la bitácora se persiste con su propio UUID: la columna
// id no tiene DEFAULT en la base, así que lo genera el caso de uso.
func TestRegisterMovement_MovimientosLlevanUUID(t *testing.T) {
	uc, store := newMovementTestUseCase(10)

	err := uc.RegisterMovement(context.Background(), MovementInput{
		CompanyID: company, UserID: user, ProductID: product,
		FromWarehouseID: whOrigin, ToWarehouseID: whDest,
		Type: entity.MovementTypeTRANSFER, Quantity: 2,
	})
	require.NoError(t, err)

	require.Len(t, store.movements, 2)
	for _, m := range store.movements {
		_, err := uuid.Parse(m.ID)
		assert.NoError(t, err, "todo movimiento persiste con un UUID válido")
	}
	assert.NotEqual(t, store.movements[0].ID, store.movements[1].ID,
		"cada registro lleva su propio ID aunque compartan TransactionID")
}

// errProductRepo simula una falla de acceso a datos al buscar el producto.
type errProductRepo struct {
	movProductRepo
	err error
}

func (r *errProductRepo) GetByID(string) (*entity.Product, error) { return nil, r.err }

// errWarehouseRepo simula una falla de acceso a datos al buscar la bodega.
type errWarehouseRepo struct {
	movWarehouseRepo
	err error
}

func (r *errWarehouseRepo) GetByID(string) (*entity.Warehouse, error) { return nil, r.err }

// Una falla del repositorio se propaga tal cual; no se disfraza de 404.
func TestRegisterMovement_FallaDeRepositorio_PropagaError(t *testing.T) {
	errCaida := errors.New("conexión perdida")
	store := &movStore{products: map[string]*entity.Product{}, stock: map[string]*entity.Stock{}}

	t.Run("producto", func(t *testing.T) {
		uc := NewRegisterMovementUseCase(
			&movTxRunner{store},
			&errProductRepo{movProductRepo: movProductRepo{store}, err: errCaida},
			&movWarehouseRepo{warehouses: map[string]*entity.Warehouse{}},
		)
		err := uc.RegisterMovement(context.Background(), MovementInput{
			CompanyID: company, UserID: user, ProductID: product,
			WarehouseID: whOrigin, Type: entity.MovementTypeADD, Quantity: 1,
		})
		assert.ErrorIs(t, err, errCaida)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("bodega", func(t *testing.T) {
		store.products[product] = &entity.Product{ID: product, CompanyID: company}
		uc := NewRegisterMovementUseCase(
			&movTxRunner{store},
			&movProductRepo{store},
			&errWarehouseRepo{err: errCaida},
		)
		err := uc.RegisterMovement(context.Background(), MovementInput{
			CompanyID: company, UserID: user, ProductID: product,
			WarehouseID: whOrigin, Type: entity.MovementTypeADD, Quantity: 1,
		})
		assert.ErrorIs(t, err, errCaida)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRegisterMovement_ProductoDeOtraEmpresa_Prohibido(t *testing.T) {
	uc, _ := newMovementTestUseCase(10)

	err := uc.RegisterMovement(context.Background(), MovementInput{
		CompanyID: "co-ajena", UserID: user, ProductID: product,
		WarehouseID: whOrigin, Type: entity.MovementTypeADD, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
