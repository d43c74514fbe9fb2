package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/franquicias-api/internal/application/dto"
	"github.com/jhoicas/franquicias-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product, incluido el
// reporte de top de productos por franquicia.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// chainIDs lee los tres identificadores de la cadena franquicia → sucursal → producto.
func chainIDs(c *fiber.Ctx) (franchiseID, branchID, productID int64, err error) {
	if franchiseID, err = parseIDParam(c, "franchiseId"); err != nil {
		return
	}
	if branchID, err = parseIDParam(c, "branchId"); err != nil {
		return
	}
	productID, err = parseIDParam(c, "productId")
	return
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        franchiseId  path  int  true  "ID de la franquicia"
// @Param        branchId     path  int  true  "ID de la sucursal"
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /franchises/{franchiseId}/branches/{branchId}/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	franchiseID, err := parseIDParam(c, "franchiseId")
	if err != nil {
		return respondDomainError(c, err)
	}
	branchID, err := parseIDParam(c, "branchId")
	if err != nil {
		return respondDomainError(c, err)
	}
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Body is required")
	}
	out, err := h.uc.Create(c.UserContext(), franchiseID, branchID, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateName godoc
// @Summary      Renombrar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        franchiseId  path  int  true  "ID de la franquicia"
// @Param        branchId     path  int  true  "ID de la sucursal"
// @Param        productId    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductNameRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /franchises/{franchiseId}/branches/{branchId}/products/{productId} [put]
func (h *ProductHandler) UpdateName(c *fiber.Ctx) error {
	franchiseID, branchID, productID, err := chainIDs(c)
	if err != nil {
		return respondDomainError(c, err)
	}
	var in dto.UpdateProductNameRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Body is required")
	}
	out, err := h.uc.UpdateName(c.UserContext(), productID, branchID, franchiseID, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// UpdateStock godoc
// @Summary      Actualizar stock de producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        franchiseId  path  int  true  "ID de la franquicia"
// @Param        branchId     path  int  true  "ID de la sucursal"
// @Param        productId    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductStockRequest  true  "Nuevo stock"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /franchises/{franchiseId}/branches/{branchId}/products/{productId}/stock [patch]
func (h *ProductHandler) UpdateStock(c *fiber.Ctx) error {
	franchiseID, branchID, productID, err := chainIDs(c)
	if err != nil {
		return respondDomainError(c, err)
	}
	var in dto.UpdateProductStockRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Body is required")
	}
	out, err := h.uc.UpdateStock(c.UserContext(), productID, branchID, franchiseID, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Eliminar producto
// @Tags         products
// @Produce      json
// @Param        franchiseId  path  int  true  "ID de la franquicia"
// @Param        branchId     path  int  true  "ID de la sucursal"
// @Param        productId    path  int  true  "ID del producto"
// @Success      204   "Producto eliminado"
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /franchises/{franchiseId}/branches/{branchId}/products/{productId} [delete]
func (h *ProductHandler) Remove(c *fiber.Ctx) error {
	franchiseID, branchID, productID, err := chainIDs(c)
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := h.uc.Remove(c.UserContext(), productID, branchID, franchiseID); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// TopProducts godoc
// @Summary      Top de productos por sucursal
// @Description  Devuelve, por cada sucursal de la franquicia, el producto con mayor stock
// @Tags         products
// @Produce      json
// @Param        franchiseId  path  int  true  "ID de la franquicia"
// @Success      200   {object}  dto.TopProductsResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /franchises/{franchiseId}/top-products [get]
func (h *ProductHandler) TopProducts(c *fiber.Ctx) error {
	franchiseID, err := parseIDParam(c, "franchiseId")
	if err != nil {
		return respondDomainError(c, err)
	}
	out, err := h.uc.TopProducts(c.UserContext(), franchiseID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
