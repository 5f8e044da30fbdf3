package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-alerts-api/internal/application/dto"
	"github.com/tu-usuario/stock-alerts-api/internal/application/usecase"
	"github.com/tu-usuario/stock-alerts-api/pkg/logger"
)

// SupplierHandler maneja las peticiones HTTP para Supplier (protegido).
type SupplierHandler struct {
	uc  *usecase.SupplierUseCase
	log *logger.Logger
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase, log *logger.Logger) *SupplierHandler {
	return &SupplierHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("company_id requerido"))
	}
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.Create(companyID, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("proveedor creado", out))
}

// List godoc
// @Summary      Listar proveedores de la empresa
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.Envelope
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("company_id requerido"))
	}
	limit, offset := pageParams(c)
	out, err := h.uc.List(companyID, limit, offset)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK("proveedores", out))
}

// LinkProduct godoc
// @Summary      Asociar proveedor a producto
// @Description  Idempotente: asociar dos veces el mismo par no es error.
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.LinkSupplierRequest  true  "Proveedor a asociar"
// @Success      200        {object}  dto.Envelope
// @Failure      404        {object}  dto.Envelope
// @Router       /api/products/{productId}/suppliers [post]
func (h *SupplierHandler) LinkProduct(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("company_id requerido"))
	}
	var in dto.LinkSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if in.SupplierID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("supplier_id es requerido"))
	}
	if err := h.uc.LinkProduct(companyID, c.Params("productId"), in.SupplierID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK("proveedor asociado", nil))
}

// UnlinkProduct godoc
// @Summary      Desasociar proveedor de producto
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        productId   path  string  true  "ID del producto"
// @Param        supplierId  path  string  true  "ID del proveedor"
// @Success      200         {object}  dto.Envelope
// @Failure      404         {object}  dto.Envelope
// @Router       /api/products/{productId}/suppliers/{supplierId} [delete]
func (h *SupplierHandler) UnlinkProduct(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("company_id requerido"))
	}
	if err := h.uc.UnlinkProduct(companyID, c.Params("productId"), c.Params("supplierId")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK("proveedor desasociado", nil))
}

// ListByProduct godoc
// @Summary      Listar proveedores de un producto
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200        {object}  dto.Envelope
// @Router       /api/products/{productId}/suppliers [get]
func (h *SupplierHandler) ListByProduct(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduct(c.Params("productId"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK("proveedores del producto", out))
}
