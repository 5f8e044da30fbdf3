package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-alerts-api/internal/application/dto"
	"github.com/tu-usuario/stock-alerts-api/internal/application/inventory"
	"github.com/tu-usuario/stock-alerts-api/pkg/logger"
)

// InventoryHandler maneja el registro y consulta de movimientos de inventario (protegido).
type InventoryHandler struct {
	uc    *inventory.RegisterMovementUseCase
	query *inventory.QueryUseCase
	log   *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.RegisterMovementUseCase, query *inventory.QueryUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, query: query, log: log}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  ADD/REMOVE/SALE sobre una bodega; TRANSFER entre dos bodegas (dos registros, misma transacción).
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("company_id requerido"))
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if err := h.uc.RegisterMovementFromRequest(c.UserContext(), companyID, GetUserID(c), in); err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("movimiento registrado", nil))
}

// ListMovements godoc
// @Summary      Consultar bitácora de movimientos
// @Description  Filtra por warehouse_id o product_id (uno de los dos) y opcionalmente por rango de fechas (RFC3339).
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "ID de la bodega"
// @Param        product_id    query  string  false  "ID del producto"
// @Param        from          query  string  false  "Desde (RFC3339)"
// @Param        to            query  string  false  "Hasta (RFC3339)"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("company_id requerido"))
	}
	from, err := parseTimeQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("from inválido: formato RFC3339"))
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("to inválido: formato RFC3339"))
	}
	limit, offset := pageParams(c)

	warehouseID := c.Query("warehouse_id")
	productID := c.Query("product_id")
	switch {
	case warehouseID != "":
		out, err := h.query.ListWarehouseMovements(companyID, warehouseID, from, to, limit, offset)
		if err != nil {
			return respondError(c, h.log, err)
		}
		return c.JSON(dto.OK("movimientos", out))
	case productID != "":
		out, err := h.query.ListProductMovements(companyID, productID, from, to, limit, offset)
		if err != nil {
			return respondError(c, h.log, err)
		}
		return c.JSON(dto.OK("movimientos", out))
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("warehouse_id o product_id es requerido"))
	}
}

// WarehouseStock godoc
// @Summary      Inventario actual de una bodega
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la bodega"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/warehouses/{id}/stock [get]
func (h *InventoryHandler) WarehouseStock(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("company_id requerido"))
	}
	limit, offset := pageParams(c)
	out, err := h.query.GetWarehouseStock(companyID, c.Params("id"), limit, offset)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK("inventario de la bodega", out))
}

// parseTimeQuery lee un query param de fecha en RFC3339; nil si está ausente.
func parseTimeQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
