// Package validator contiene validaciones puras de dominio, sin estado y sin
// dependencia de la persistencia. Cada función devuelve un *domain.Error de
// kind validation con un mensaje listo para el cliente.
package validator

import (
	"fmt"
	"strings"

	"github.com/jhoicas/franquicias-api/internal/domain"
)

// maxNameLength es el largo máximo de nombre para las tres entidades.
const maxNameLength = 60

// FranchiseName valida el nombre de una franquicia.
func FranchiseName(name string) error {
	return validateName("Franchise", name)
}

// BranchName valida el nombre de una sucursal.
func BranchName(name string) error {
	return validateName("Branch", name)
}

// ProductName valida el nombre de un producto.
func ProductName(name string) error {
	return validateName("Product", name)
}

// ProductStock valida el stock de un producto. nil significa campo ausente en
// la petición (distinto de 0, que es un valor válido).
func ProductStock(stock *int) error {
	if stock == nil {
		return domain.NewValidation("Product stock is required")
	}
	if *stock < 0 {
		return domain.NewValidation("Product stock must be greater than or equal to 0")
	}
	return nil
}

// validateName aplica las reglas comunes: no blanco tras trim y largo máximo.
// El largo se mide sobre la cadena original, no sobre la recortada.
func validateName(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.NewValidation(fmt.Sprintf("%s name is required", field))
	}
	if len(name) > maxNameLength {
		return domain.NewValidation(fmt.Sprintf("%s name must not exceed %d characters", field, maxNameLength))
	}
	return nil
}
