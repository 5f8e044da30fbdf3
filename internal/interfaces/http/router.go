package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-alerts-api/internal/application/alerts"
	"github.com/tu-usuario/stock-alerts-api/internal/application/auth"
	"github.com/tu-usuario/stock-alerts-api/internal/application/inventory"
	"github.com/tu-usuario/stock-alerts-api/internal/application/usecase"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC        *usecase.CompanyUseCase
	WarehouseUC      *usecase.WarehouseUseCase
	ProductUC        *usecase.ProductUseCase
	SupplierUC       *usecase.SupplierUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	InventoryQuery   *inventory.QueryUseCase
	LowStockUC       *alerts.LowStockUseCase
	AlertReportUC    *alerts.ReportUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
	Log              *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Log)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Alertas de stock bajo (lectura, por empresa)
	alertHandler := NewAlertHandler(deps.LowStockUC, deps.AlertReportUC, deps.Log)
	companies.Get("/:companyId/alerts/low-stock", alertHandler.GetLowStock)
	companies.Get("/:companyId/alerts/low-stock/pdf", alertHandler.GetLowStockPDF)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.Log)
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.InventoryQuery, deps.Log)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Get("/:id/stock", inventoryHandler.WarehouseStock)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.Log)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Get("/:productId/suppliers", supplierHandler.ListByProduct)
	products.Post("/:productId/suppliers", supplierHandler.LinkProduct)
	products.Delete("/:productId/suppliers/:supplierId", supplierHandler.UnlinkProduct)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)

	// Inventory movements (protegido; escribir requiere rol operativo)
	invGroup := protected.Group("/inventory")
	invGroup.Post("/movements", RequireRole(entity.RoleAdmin, entity.RoleBodeguero, entity.RoleVendedor), inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
}
