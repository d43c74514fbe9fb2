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

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementación del puerto BranchRepository sobre PostgreSQL.
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

// Save inserta (ID 0) o actualiza. El insert devuelve el ID asignado.
func (r *BranchRepo) Save(ctx context.Context, branch *entity.Branch) (*entity.Branch, error) {
	if branch.ID == 0 {
		err := r.q.QueryRow(ctx,
			`INSERT INTO branches (franchise_id, name) VALUES ($1, $2) RETURNING id`,
			branch.FranchiseID, branch.Name,
		).Scan(&branch.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, domain.ErrBranchNameConflict
			}
			return nil, fmt.Errorf("insert branch: %w", err)
		}
		return branch, nil
	}
	_, err := r.q.Exec(ctx,
		`UPDATE branches SET name = $2 WHERE id = $1`,
		branch.ID, branch.Name,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrBranchNameConflict
		}
		return nil, fmt.Errorf("update branch: %w", err)
	}
	return branch, nil
}

// FindByID obtiene una sucursal por ID. Devuelve (nil, nil) si no existe.
func (r *BranchRepo) FindByID(ctx context.Context, id int64) (*entity.Branch, error) {
	return r.scanOne(r.q.QueryRow(ctx,
		`SELECT id, franchise_id, name FROM branches WHERE id = $1`, id,
	), "get branch")
}

// FindByIDAndFranchiseID obtiene la sucursal solo si pertenece a la franquicia.
func (r *BranchRepo) FindByIDAndFranchiseID(ctx context.Context, id, franchiseID int64) (*entity.Branch, error) {
	return r.scanOne(r.q.QueryRow(ctx,
		`SELECT id, franchise_id, name FROM branches WHERE id = $1 AND franchise_id = $2`,
		id, franchiseID,
	), "get branch by franchise")
}

// FindByFranchiseID lista las sucursales de una franquicia.
func (r *BranchRepo) FindByFranchiseID(ctx context.Context, franchiseID int64) ([]*entity.Branch, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, franchise_id, name FROM branches WHERE franchise_id = $1 ORDER BY id`,
		franchiseID,
	)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Branch
	for rows.Next() {
		var b entity.Branch
		if err := rows.Scan(&b.ID, &b.FranchiseID, &b.Name); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// ExistsByNameAndFranchiseID comprueba unicidad de nombre dentro de la franquicia.
func (r *BranchRepo) ExistsByNameAndFranchiseID(ctx context.Context, name string, franchiseID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM branches WHERE name = $1 AND franchise_id = $2)`,
		name, franchiseID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists branch by name: %w", err)
	}
	return exists, nil
}

func (r *BranchRepo) scanOne(row pgx.Row, op string) (*entity.Branch, error) {
	var b entity.Branch
	if err := row.Scan(&b.ID, &b.FranchiseID, &b.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &b, nil
}
