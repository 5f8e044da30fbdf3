package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appalerts "github.com/tu-usuario/stock-alerts-api/internal/application/alerts"
	"github.com/tu-usuario/stock-alerts-api/internal/application/auth"
	"github.com/tu-usuario/stock-alerts-api/internal/application/inventory"
	"github.com/tu-usuario/stock-alerts-api/internal/application/usecase"
	infrapdf "github.com/tu-usuario/stock-alerts-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/stock-alerts-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/stock-alerts-api/internal/interfaces/http"
	"github.com/tu-usuario/stock-alerts-api/pkg/config"
	"github.com/tu-usuario/stock-alerts-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("umbral_default", cfg.Alerts.DefaultThreshold).
		Int("ventana_ventas_dias", cfg.Alerts.SalesWindowDays).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, productRepo, warehouseRepo)
	inventoryQueryUC := inventory.NewQueryUseCase(movementRepo, stockRepo, warehouseRepo, productRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	productUC := usecase.NewProductUseCase(txRunner, productRepo, warehouseRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, productRepo)

	lowStockUC := appalerts.NewLowStockUseCase(companyRepo, alertRepo, appalerts.Config{
		DefaultThreshold:   cfg.Alerts.DefaultThreshold,
		SalesWindowDays:    cfg.Alerts.SalesWindowDays,
		RequireRecentSales: cfg.Alerts.RequireRecentSales,
	})

	// PDF: reporte descargable de alertas de stock bajo
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	alertReportUC := appalerts.NewReportUseCase(lowStockUC, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Alerts API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:        companyUC,
		WarehouseUC:      warehouseUC,
		ProductUC:        productUC,
		SupplierUC:       supplierUC,
		RegisterMovement: registerMovementUC,
		InventoryQuery:   inventoryQueryUC,
		LowStockUC:       lowStockUC,
		AlertReportUC:    alertReportUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
		Log:              log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
