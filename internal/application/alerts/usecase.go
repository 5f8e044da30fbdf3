package alerts

import (
	"context"
	"sort"

	"github.com/tu-usuario/stock-alerts-api/internal/application/dto"
	"github.com/tu-usuario/stock-alerts-api/internal/domain"
	domainalerts "github.com/tu-usuario/stock-alerts-api/internal/domain/alerts"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/repository"
)

// Config parámetros del evaluador, resueltos desde la configuración del proceso.
type Config struct {
	// DefaultThreshold umbral global cuando el producto no define el suyo.
	DefaultThreshold int
	// SalesWindowDays ventana para ventas recientes y estimado de quiebre.
	SalesWindowDays int
	// RequireRecentSales excluye SKUs sin ventas en la ventana: pueden estar
	// descontinuados y alertarlos sería ruido.
	RequireRecentSales bool
}

// LowStockUseCase evalúa el inventario de una empresa y produce las alertas
// de stock bajo. Solo lectura: no modifica stock ni bitácora.
type LowStockUseCase struct {
	companyRepo repository.CompanyRepository
	alertRepo   repository.AlertRepository
	cfg         Config
}

// NewLowStockUseCase construye el caso de uso.
func NewLowStockUseCase(
	companyRepo repository.CompanyRepository,
	alertRepo repository.AlertRepository,
	cfg Config,
) *LowStockUseCase {
	return &LowStockUseCase{companyRepo: companyRepo, alertRepo: alertRepo, cfg: cfg}
}

// GetLowStockAlerts devuelve una alerta por cada fila de inventario de la
// empresa cuya cantidad está en o por debajo de su umbral aplicable.
// Devuelve domain.ErrNotFound si la empresa no existe. Una lista vacía es un
// resultado válido, no un error. El orden es estable: bodega y luego producto.
func (uc *LowStockUseCase) GetLowStockAlerts(ctx context.Context, companyID string) ([]dto.LowStockAlertDTO, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	rows, err := uc.alertRepo.ListCompanyStock(ctx, companyID, uc.cfg.SalesWindowDays)
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.LowStockAlertDTO, 0, len(rows))
	for _, row := range rows {
		threshold := domainalerts.ApplicableThreshold(row.Threshold, uc.cfg.DefaultThreshold)
		if !domainalerts.IsLowStock(row.Quantity, threshold) {
			continue
		}
		if uc.cfg.RequireRecentSales && row.SoldInWindow <= 0 {
			continue
		}

		alert := dto.LowStockAlertDTO{
			ProductID:         row.ProductID,
			ProductName:       row.ProductName,
			SKU:               row.SKU,
			WarehouseID:       row.WarehouseID,
			WarehouseName:     row.WarehouseName,
			CurrentQuantity:   row.Quantity,
			Threshold:         threshold,
			DaysUntilStockout: domainalerts.DaysUntilStockout(row.Quantity, row.SoldInWindow, uc.cfg.SalesWindowDays),
		}
		if row.SupplierID != nil {
			alert.Supplier = &dto.SupplierContactDTO{
				ID:           *row.SupplierID,
				Name:         deref(row.SupplierName),
				ContactEmail: deref(row.SupplierEmail),
				ContactPhone: deref(row.SupplierPhone),
			}
		}
		alerts = append(alerts, alert)
	}

	// El repositorio ya ordena, pero el contrato de orden estable es del caso
	// de uso: no depende de la implementación de persistencia.
	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].WarehouseID != alerts[j].WarehouseID {
			return alerts[i].WarehouseID < alerts[j].WarehouseID
		}
		return alerts[i].ProductID < alerts[j].ProductID
	})

	return alerts, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
