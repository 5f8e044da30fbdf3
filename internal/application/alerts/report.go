package alerts

import (
	"context"
	"fmt"

	"github.com/tu-usuario/stock-alerts-api/internal/application/dto"
	"github.com/tu-usuario/stock-alerts-api/internal/domain"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/entity"
)

// ReportPDFGenerator puerto para la generación del reporte PDF de alertas.
// La implementación (Maroto) vive en infrastructure/pdf.
type ReportPDFGenerator interface {
	GenerateLowStockPDF(ctx context.Context, company *entity.Company, alerts []dto.LowStockAlertDTO) ([]byte, error)
}

// ReportUseCase produce el reporte PDF de stock bajo de una empresa.
type ReportUseCase struct {
	lowStock    *LowStockUseCase
	companyRepo interface {
		GetByID(id string) (*entity.Company, error)
	}
	generator ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso del reporte.
func NewReportUseCase(lowStock *LowStockUseCase, generator ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{lowStock: lowStock, companyRepo: lowStock.companyRepo, generator: generator}
}

// GetLowStockReportPDF evalúa las alertas de la empresa y devuelve los bytes
// del PDF. Un reporte sin alertas es válido (página con tabla vacía).
func (uc *ReportUseCase) GetLowStockReportPDF(ctx context.Context, companyID string) ([]byte, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	alerts, err := uc.lowStock.GetLowStockAlerts(ctx, companyID)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := uc.generator.GenerateLowStockPDF(ctx, company, alerts)
	if err != nil {
		return nil, fmt.Errorf("generar reporte de alertas: %w", err)
	}
	return pdfBytes, nil
}
