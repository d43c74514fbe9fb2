package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/franquicias-api/internal/application/dto"
	"github.com/jhoicas/franquicias-api/internal/application/usecase"
)

// FranchiseHandler maneja las peticiones HTTP para Franchise.
type FranchiseHandler struct {
	uc *usecase.FranchiseUseCase
}

// NewFranchiseHandler construye el handler.
func NewFranchiseHandler(uc *usecase.FranchiseUseCase) *FranchiseHandler {
	return &FranchiseHandler{uc: uc}
}

// Create godoc
// @Summary      Crear franquicia
// @Tags         franchises
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FranchiseRequest  true  "Datos de la franquicia"
// @Success      201   {object}  dto.FranchiseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /franchises [post]
func (h *FranchiseHandler) Create(c *fiber.Ctx) error {
	var in dto.FranchiseRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Body is required")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateName godoc
// @Summary      Renombrar franquicia
// @Tags         franchises
// @Accept       json
// @Produce      json
// @Param        franchiseId  path  int  true  "ID de la franquicia"
// @Param        body  body  dto.FranchiseRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.FranchiseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /franchises/{franchiseId} [put]
func (h *FranchiseHandler) UpdateName(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "franchiseId")
	if err != nil {
		return respondDomainError(c, err)
	}
	var in dto.FranchiseRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Body is required")
	}
	out, err := h.uc.UpdateName(c.UserContext(), id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
