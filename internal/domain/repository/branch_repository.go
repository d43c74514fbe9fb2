package repository

import (
	"context"

	"github.com/jhoicas/franquicias-api/internal/domain/entity"
)

// BranchRepository define el puerto de persistencia para Branch (DIP).
// Los Find* devuelven (nil, nil) si no hay fila.
type BranchRepository interface {
	Save(ctx context.Context, branch *entity.Branch) (*entity.Branch, error)
	FindByID(ctx context.Context, id int64) (*entity.Branch, error)
	// FindByIDAndFranchiseID devuelve la sucursal solo si pertenece a la
	// franquicia indicada; un mismatch se trata igual que inexistente.
	FindByIDAndFranchiseID(ctx context.Context, id, franchiseID int64) (*entity.Branch, error)
	FindByFranchiseID(ctx context.Context, franchiseID int64) ([]*entity.Branch, error)
	// ExistsByNameAndFranchiseID comprueba unicidad de nombre dentro de la franquicia.
	ExistsByNameAndFranchiseID(ctx context.Context, name string, franchiseID int64) (bool, error)
}
