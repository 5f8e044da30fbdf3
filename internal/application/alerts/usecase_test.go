package alerts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-alerts-api/internal/domain"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func (f *fakeCompanyRepo) Create(c *entity.Company) error { f.companies[c.ID] = c; return nil }
func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return f.companies[id], nil
}
func (f *fakeCompanyRepo) Update(c *entity.Company) error { f.companies[c.ID] = c; return nil }
func (f *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	return nil, nil
}
func (f *fakeCompanyRepo) Delete(id string) error { delete(f.companies, id); return nil }

type fakeAlertRepo struct {
	rows       []repository.LowStockRow
	windowDays int // captura la ventana pedida
}

func (f *fakeAlertRepo) ListCompanyStock(_ context.Context, _ string, windowDays int) ([]repository.LowStockRow, error) {
	f.windowDays = windowDays
	return f.rows, nil
}

const testCompanyID = "co-1"

func newTestUseCase(rows []repository.LowStockRow, cfg Config) (*LowStockUseCase, *fakeAlertRepo) {
	companyRepo := &fakeCompanyRepo{companies: map[string]*entity.Company{
		testCompanyID: {ID: testCompanyID, Name: "Acme", Status: "active"},
	}}
	alertRepo := &fakeAlertRepo{rows: rows}
	return NewLowStockUseCase(companyRepo, alertRepo, cfg), alertRepo
}

func row(productID, warehouseID string, qty int64, threshold *int, sold int64) repository.LowStockRow {
	return repository.LowStockRow{
		ProductID:     productID,
		SKU:           "SKU-" + productID,
		ProductName:   "Producto " + productID,
		WarehouseID:   warehouseID,
		WarehouseName: "Bodega " + warehouseID,
		Quantity:      qty,
		Threshold:     threshold,
		SoldInWindow:  sold,
	}
}

func intPtr(v int) *int { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestGetLowStockAlerts_EmpresaInexistente_Retorna404(t *testing.T) {
	uc, _ := newTestUseCase(nil, Config{DefaultThreshold: 10, SalesWindowDays: 30})

	_, err := uc.GetLowStockAlerts(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetLowStockAlerts_SinFilas_ListaVacia(t *testing.T) {
	uc, _ := newTestUseCase(nil, Config{DefaultThreshold: 10, SalesWindowDays: 30})

	alerts, err := uc.GetLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	assert.Empty(t, alerts, "sin inventario bajo umbral no hay alertas; lista vacía es resultado válido")
}

// Límite inclusivo: cantidad igual al umbral alerta; una unidad más no.
func TestGetLowStockAlerts_UmbralInclusivo(t *testing.T) {
	rows := []repository.LowStockRow{
		row("p1", "w1", 10, nil, 0), // == umbral default → alerta
		row("p2", "w1", 11, nil, 0), // umbral+1 → no alerta
	}
	uc, _ := newTestUseCase(rows, Config{DefaultThreshold: 10, SalesWindowDays: 30})

	alerts, err := uc.GetLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "p1", alerts[0].ProductID)
	assert.Equal(t, int64(10), alerts[0].CurrentQuantity)
	assert.Equal(t, 10, alerts[0].Threshold)
}

// El umbral del producto tiene prioridad sobre el global.
func TestGetLowStockAlerts_UmbralPorProducto(t *testing.T) {
	rows := []repository.LowStockRow{
		row("p1", "w1", 15, intPtr(20), 0), // 15 <= 20 → alerta aunque el global sea 10
		row("p2", "w1", 15, nil, 0),        // 15 > 10 global → no alerta
	}
	uc, _ := newTestUseCase(rows, Config{DefaultThreshold: 10, SalesWindowDays: 30})

	alerts, err := uc.GetLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "p1", alerts[0].ProductID)
	assert.Equal(t, 20, alerts[0].Threshold, "la alerta reporta el umbral aplicado")
}

// Umbral cero: solo alerta con cantidad cero.
func TestGetLowStockAlerts_UmbralCero(t *testing.T) {
	rows := []repository.LowStockRow{
		row("p1", "w1", 0, intPtr(0), 0),
		row("p2", "w1", 1, intPtr(0), 0),
	}
	uc, _ := newTestUseCase(rows, Config{DefaultThreshold: 10, SalesWindowDays: 30})

	alerts, err := uc.GetLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "p1", alerts[0].ProductID)
}

// Con RequireRecentSales, los SKUs sin ventas en la ventana se excluyen.
func TestGetLowStockAlerts_FiltroVentasRecientes(t *testing.T) {
	rows := []repository.LowStockRow{
		row("p1", "w1", 5, nil, 12), // bajo umbral + con ventas → alerta
		row("p2", "w1", 5, nil, 0),  // bajo umbral sin ventas → excluido
	}
	uc, _ := newTestUseCase(rows, Config{DefaultThreshold: 10, SalesWindowDays: 30, RequireRecentSales: true})

	alerts, err := uc.GetLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "p1", alerts[0].ProductID)
}

// Estimado de quiebre: cantidad / (vendido / días de ventana), a 1 decimal.
func TestGetLowStockAlerts_DiasHastaQuiebre(t *testing.T) {
	rows := []repository.LowStockRow{
		row("p1", "w1", 10, nil, 60), // 10 / (60/30) = 5 días
		row("p2", "w1", 5, nil, 7),   // 5*30/7 = 21.428… → 21.4
		row("p3", "w1", 5, nil, 0),   // sin ventas → estimado indefinido
	}
	uc, _ := newTestUseCase(rows, Config{DefaultThreshold: 10, SalesWindowDays: 30})

	alerts, err := uc.GetLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, alerts, 3)

	require.NotNil(t, alerts[0].DaysUntilStockout)
	assert.Equal(t, "5", alerts[0].DaysUntilStockout.String())
	require.NotNil(t, alerts[1].DaysUntilStockout)
	assert.Equal(t, "21.4", alerts[1].DaysUntilStockout.String())
	assert.Nil(t, alerts[2].DaysUntilStockout, "sin ventas en la ventana el estimado se omite")
}

// La ventana configurada es la que se pide al repositorio.
func TestGetLowStockAlerts_UsaVentanaConfigurada(t *testing.T) {
	uc, alertRepo := newTestUseCase(nil, Config{DefaultThreshold: 10, SalesWindowDays: 7})

	_, err := uc.GetLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	assert.Equal(t, 7, alertRepo.windowDays)
}

// Contacto del primer proveedor asociado; sin proveedores el campo se omite.
func TestGetLowStockAlerts_ContactoProveedor(t *testing.T) {
	supID, supName, supEmail := "s1", "Proveedora SA", "compras@proveedora.co"
	withSupplier := row("p1", "w1", 3, nil, 0)
	withSupplier.SupplierID = &supID
	withSupplier.SupplierName = &supName
	withSupplier.SupplierEmail = &supEmail

	rows := []repository.LowStockRow{withSupplier, row("p2", "w1", 3, nil, 0)}
	uc, _ := newTestUseCase(rows, Config{DefaultThreshold: 10, SalesWindowDays: 30})

	alerts, err := uc.GetLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	require.NotNil(t, alerts[0].Supplier)
	assert.Equal(t, "s1", alerts[0].Supplier.ID)
	assert.Equal(t, "Proveedora SA", alerts[0].Supplier.Name)
	assert.Equal(t, "compras@proveedora.co", alerts[0].Supplier.ContactEmail)
	assert.Nil(t, alerts[1].Supplier)
}

// Orden estable: por bodega y dentro de la bodega por producto.
func TestGetLowStockAlerts_OrdenEstable(t *testing.T) {
	rows := []repository.LowStockRow{
		row("p2", "w2", 1, nil, 0),
		row("p1", "w1", 1, nil, 0),
		row("p1", "w2", 1, nil, 0),
		row("p2", "w1", 1, nil, 0),
	}
	uc, _ := newTestUseCase(rows, Config{DefaultThreshold: 10, SalesWindowDays: 30})

	alerts, err := uc.GetLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, alerts, 4)

	got := make([][2]string, 0, len(alerts))
	for _, a := range alerts {
		got = append(got, [2]string{a.WarehouseID, a.ProductID})
	}
	assert.Equal(t, [][2]string{
		{"w1", "p1"}, {"w1", "p2"}, {"w2", "p1"}, {"w2", "p2"},
	}, got)
}
