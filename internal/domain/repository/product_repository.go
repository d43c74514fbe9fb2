package repository

import (
	"context"

	"github.com/jhoicas/franquicias-api/internal/domain/entity"
)

// BranchTopProductRow es una fila del query agregado de top de productos:
// una fila por sucursal de la franquicia, con columnas de producto nulas si
// la sucursal no tiene productos.
type BranchTopProductRow struct {
	BranchID     int64
	BranchName   string
	ProductID    *int64
	ProductName  *string
	ProductStock *int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los Find* devuelven (nil, nil) si no hay fila.
type ProductRepository interface {
	Save(ctx context.Context, product *entity.Product) (*entity.Product, error)
	// FindByIDAndBranchID devuelve el producto solo si pertenece a la
	// sucursal indicada; un mismatch se trata igual que inexistente.
	FindByIDAndBranchID(ctx context.Context, id, branchID int64) (*entity.Product, error)
	// ExistsByNameAndBranchID comprueba unicidad de nombre dentro de la sucursal.
	ExistsByNameAndBranchID(ctx context.Context, name string, branchID int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
	// FindTopByBranchID devuelve el producto de mayor stock de la sucursal.
	// Con empate de stock el desempate lo decide el almacenamiento.
	FindTopByBranchID(ctx context.Context, branchID int64) (*entity.Product, error)
	// FindTopProductsByFranchiseID resuelve el top por sucursal de toda la
	// franquicia en un solo round trip (evita N+1).
	FindTopProductsByFranchiseID(ctx context.Context, franchiseID int64) ([]BranchTopProductRow, error)
}
