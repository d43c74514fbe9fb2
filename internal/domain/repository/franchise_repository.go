package repository

import (
	"context"

	"github.com/jhoicas/franquicias-api/internal/domain/entity"
)

// FranchiseRepository define el puerto de persistencia para Franchise (DIP).
// FindByID devuelve (nil, nil) si la franquicia no existe.
type FranchiseRepository interface {
	// Save inserta si ID es 0 y actualiza si no; devuelve la entidad con ID asignado.
	Save(ctx context.Context, franchise *entity.Franchise) (*entity.Franchise, error)
	FindByID(ctx context.Context, id int64) (*entity.Franchise, error)
	// ExistsByName comprueba unicidad global de nombre (match exacto, case-sensitive).
	ExistsByName(ctx context.Context, name string) (bool, error)
}
