package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/franquicias-api/internal/application/dto"
	"github.com/jhoicas/franquicias-api/internal/domain"
)

// statusFor mapea el kind del error de dominio al status HTTP.
func statusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return fiber.StatusBadRequest
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// respondDomainError serializa un error de dominio con el cuerpo estándar
// {timestamp, path, status, error, message}. Errores no clasificados salen
// como 500 con mensaje genérico (sin detalle interno).
func respondDomainError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	message := "Internal server error"
	var de *domain.Error
	if errors.As(err, &de) && de.Kind != domain.KindInternal {
		message = de.Message
	}
	return respondError(c, status, message)
}

// respondError serializa un error HTTP con el cuerpo estándar.
func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Timestamp: time.Now(),
		Path:      c.Path(),
		Status:    status,
		Error:     statusText(status),
		Message:   message,
	})
}

func statusText(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "Bad Request"
	case fiber.StatusNotFound:
		return "Not Found"
	case fiber.StatusConflict:
		return "Conflict"
	default:
		return "Internal Server Error"
	}
}

// parseIDParam lee un parámetro de ruta como int64 positivo.
func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidation(name + " must be a valid number")
	}
	return id, nil
}
