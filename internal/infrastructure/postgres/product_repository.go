package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/franquicias-api/internal/domain"
	"github.com/jhoicas/franquicias-api/internal/domain/entity"
	"github.com/jhoicas/franquicias-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Save inserta (ID 0) o actualiza nombre y stock. El insert devuelve el ID asignado.
func (r *ProductRepo) Save(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if product.ID == 0 {
		err := r.q.QueryRow(ctx,
			`INSERT INTO products (branch_id, name, stock) VALUES ($1, $2, $3) RETURNING id`,
			product.BranchID, product.Name, product.Stock,
		).Scan(&product.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, domain.ErrProductNameConflict
			}
			return nil, fmt.Errorf("insert product: %w", err)
		}
		return product, nil
	}
	_, err := r.q.Exec(ctx,
		`UPDATE products SET name = $2, stock = $3 WHERE id = $1`,
		product.ID, product.Name, product.Stock,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrProductNameConflict
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

// FindByIDAndBranchID obtiene el producto solo si pertenece a la sucursal.
func (r *ProductRepo) FindByIDAndBranchID(ctx context.Context, id, branchID int64) (*entity.Product, error) {
	return r.scanOne(r.q.QueryRow(ctx,
		`SELECT id, branch_id, name, stock FROM products WHERE id = $1 AND branch_id = $2`,
		id, branchID,
	), "get product by branch")
}

// ExistsByNameAndBranchID comprueba unicidad de nombre dentro de la sucursal.
func (r *ProductRepo) ExistsByNameAndBranchID(ctx context.Context, name string, branchID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE name = $1 AND branch_id = $2)`,
		name, branchID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists product by name: %w", err)
	}
	return exists, nil
}

// DeleteByID elimina un producto por ID.
func (r *ProductRepo) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// FindTopByBranchID devuelve el producto de mayor stock de la sucursal.
// Con empate, LIMIT 1 deja el desempate al orden del almacenamiento.
func (r *ProductRepo) FindTopByBranchID(ctx context.Context, branchID int64) (*entity.Product, error) {
	return r.scanOne(r.q.QueryRow(ctx,
		`SELECT id, branch_id, name, stock FROM products WHERE branch_id = $1 ORDER BY stock DESC LIMIT 1`,
		branchID,
	), "top product by branch")
}

// FindTopProductsByFranchiseID resuelve el top por sucursal de toda la
// franquicia en un solo round trip. Sucursales sin productos salen con
// columnas de producto nulas.
func (r *ProductRepo) FindTopProductsByFranchiseID(ctx context.Context, franchiseID int64) ([]repository.BranchTopProductRow, error) {
	rows, err := r.q.Query(ctx, `
		SELECT b.id, b.name, p.id, p.name, p.stock
		FROM branches b
		LEFT JOIN LATERAL (
			SELECT id, name, stock FROM products
			WHERE branch_id = b.id
			ORDER BY stock DESC
			LIMIT 1
		) p ON TRUE
		WHERE b.franchise_id = $1
		ORDER BY b.id`,
		franchiseID,
	)
	if err != nil {
		return nil, fmt.Errorf("top products by franchise: %w", err)
	}
	defer rows.Close()
	var list []repository.BranchTopProductRow
	for rows.Next() {
		var row repository.BranchTopProductRow
		if err := rows.Scan(&row.BranchID, &row.BranchName, &row.ProductID, &row.ProductName, &row.ProductStock); err != nil {
			return nil, fmt.Errorf("scan top product row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.BranchID, &p.Name, &p.Stock); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
