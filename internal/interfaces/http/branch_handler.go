package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/franquicias-api/internal/application/dto"
	"github.com/jhoicas/franquicias-api/internal/application/usecase"
)

// BranchHandler maneja las peticiones HTTP para Branch.
type BranchHandler struct {
	uc *usecase.BranchUseCase
}

// NewBranchHandler construye el handler.
func NewBranchHandler(uc *usecase.BranchUseCase) *BranchHandler {
	return &BranchHandler{uc: uc}
}

// Create godoc
// @Summary      Crear sucursal
// @Tags         branches
// @Accept       json
// @Produce      json
// @Param        franchiseId  path  int  true  "ID de la franquicia"
// @Param        body  body  dto.BranchRequest  true  "Datos de la sucursal"
// @Success      201   {object}  dto.BranchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /franchises/{franchiseId}/branches [post]
func (h *BranchHandler) Create(c *fiber.Ctx) error {
	franchiseID, err := parseIDParam(c, "franchiseId")
	if err != nil {
		return respondDomainError(c, err)
	}
	var in dto.BranchRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Body is required")
	}
	out, err := h.uc.Create(c.UserContext(), franchiseID, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateName godoc
// @Summary      Renombrar sucursal
// @Tags         branches
// @Accept       json
// @Produce      json
// @Param        franchiseId  path  int  true  "ID de la franquicia"
// @Param        branchId     path  int  true  "ID de la sucursal"
// @Param        body  body  dto.BranchRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.BranchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /franchises/{franchiseId}/branches/{branchId} [put]
func (h *BranchHandler) UpdateName(c *fiber.Ctx) error {
	franchiseID, err := parseIDParam(c, "franchiseId")
	if err != nil {
		return respondDomainError(c, err)
	}
	branchID, err := parseIDParam(c, "branchId")
	if err != nil {
		return respondDomainError(c, err)
	}
	var in dto.BranchRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Body is required")
	}
	out, err := h.uc.UpdateName(c.UserContext(), branchID, franchiseID, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
