package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-alerts-api/internal/application/alerts"
	"github.com/tu-usuario/stock-alerts-api/internal/application/dto"
	"github.com/tu-usuario/stock-alerts-api/pkg/logger"
)

// AlertHandler expone la evaluación de stock bajo (solo lectura).
type AlertHandler struct {
	lowStock *alerts.LowStockUseCase
	report   *alerts.ReportUseCase
	log      *logger.Logger
}

// NewAlertHandler construye el handler.
func NewAlertHandler(lowStock *alerts.LowStockUseCase, report *alerts.ReportUseCase, log *logger.Logger) *AlertHandler {
	return &AlertHandler{lowStock: lowStock, report: report, log: log}
}

// GetLowStock godoc
// @Summary      Alertas de stock bajo de una empresa
// @Description  Una alerta por par (producto, bodega) en o por debajo de su umbral. Lista vacía es resultado válido.
// @Tags         alerts
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/companies/{companyId}/alerts/low-stock [get]
func (h *AlertHandler) GetLowStock(c *fiber.Ctx) error {
	companyID := c.Params("companyId")
	alertsList, err := h.lowStock.GetLowStockAlerts(c.UserContext(), companyID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	data := dto.LowStockListData{Alerts: alertsList, TotalAlerts: len(alertsList)}
	return c.JSON(dto.OK("alertas de stock bajo", data))
}

// GetLowStockPDF godoc
// @Summary      Reporte PDF de alertas de stock bajo
// @Tags         alerts
// @Produce      application/pdf
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.Envelope
// @Router       /api/companies/{companyId}/alerts/low-stock/pdf [get]
func (h *AlertHandler) GetLowStockPDF(c *fiber.Ctx) error {
	companyID := c.Params("companyId")
	pdfBytes, err := h.report.GetLowStockReportPDF(c.UserContext(), companyID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-bajo.pdf"`)
	return c.Send(pdfBytes)
}
