package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-alerts-api/internal/application/alerts"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/repository"
	apphttp "github.com/tu-usuario/stock-alerts-api/internal/interfaces/http"
	"github.com/tu-usuario/stock-alerts-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type stubCompanyRepo struct{ companies map[string]*entity.Company }

func (s *stubCompanyRepo) Create(c *entity.Company) error { return nil }
func (s *stubCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return s.companies[id], nil
}
func (s *stubCompanyRepo) Update(*entity.Company) error { return nil }
func (s *stubCompanyRepo) List(int, int) ([]*entity.Company, error) {
	return nil, nil
}
func (s *stubCompanyRepo) Delete(string) error { return nil }

type stubAlertRepo struct{ rows []repository.LowStockRow }

func (s *stubAlertRepo) ListCompanyStock(context.Context, string, int) ([]repository.LowStockRow, error) {
	return s.rows, nil
}

func buildAlertApp(rows []repository.LowStockRow) *fiber.App {
	companyRepo := &stubCompanyRepo{companies: map[string]*entity.Company{
		testCompanyID: {ID: testCompanyID, Name: "Acme", Status: "active"},
	}}
	lowStockUC := alerts.NewLowStockUseCase(companyRepo, &stubAlertRepo{rows: rows}, alerts.Config{
		DefaultThreshold: 10,
		SalesWindowDays:  30,
	})
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	handler := apphttp.NewAlertHandler(lowStockUC, nil, log)

	app := fiber.New()
	app.Get("/api/companies/:companyId/alerts/low-stock", handler.GetLowStock)
	return app
}

type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Alerts []struct {
			ProductID       string `json:"product_id"`
			WarehouseID     string `json:"warehouse_id"`
			CurrentQuantity int64  `json:"current_quantity"`
			Threshold       int    `json:"threshold"`
		} `json:"alerts"`
		TotalAlerts int `json:"total_alerts"`
	} `json:"data"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestGetLowStock_RespuestaConSobre(t *testing.T) {
	rows := []repository.LowStockRow{
		{ProductID: "p1", SKU: "SKU-1", ProductName: "Uno", WarehouseID: "w1", WarehouseName: "Central", Quantity: 3},
		{ProductID: "p2", SKU: "SKU-2", ProductName: "Dos", WarehouseID: "w1", WarehouseName: "Central", Quantity: 99},
	}
	app := buildAlertApp(rows)

	req := httptest.NewRequest(http.MethodGet, "/api/companies/"+testCompanyID+"/alerts/low-stock", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "success", body.Status)
	require.Len(t, body.Data.Alerts, 1, "solo el producto bajo umbral alerta")
	assert.Equal(t, "p1", body.Data.Alerts[0].ProductID)
	assert.Equal(t, int64(3), body.Data.Alerts[0].CurrentQuantity)
	assert.Equal(t, 10, body.Data.Alerts[0].Threshold)
	assert.Equal(t, 1, body.Data.TotalAlerts)
}

func TestGetLowStock_SinAlertas_ListaVaciaConTotalCero(t *testing.T) {
	app := buildAlertApp(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/companies/"+testCompanyID+"/alerts/low-stock", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "sin alertas sigue siendo 200")

	var body envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, 0, body.Data.TotalAlerts)
}

func TestGetLowStock_EmpresaInexistente_Retorna404(t *testing.T) {
	app := buildAlertApp(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/companies/no-existe/alerts/low-stock", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "error", body["status"])
}
