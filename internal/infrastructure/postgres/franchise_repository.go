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

var _ repository.FranchiseRepository = (*FranchiseRepo)(nil)

// FranchiseRepo implementación del puerto FranchiseRepository sobre PostgreSQL.
type FranchiseRepo struct {
	q Querier
}

// NewFranchiseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFranchiseRepository(q Querier) *FranchiseRepo {
	return &FranchiseRepo{q: q}
}

// Save inserta (ID 0) o actualiza. El insert devuelve el ID asignado.
func (r *FranchiseRepo) Save(ctx context.Context, franchise *entity.Franchise) (*entity.Franchise, error) {
	if franchise.ID == 0 {
		err := r.q.QueryRow(ctx,
			`INSERT INTO franchises (name) VALUES ($1) RETURNING id`,
			franchise.Name,
		).Scan(&franchise.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, domain.ErrFranchiseNameConflict
			}
			return nil, fmt.Errorf("insert franchise: %w", err)
		}
		return franchise, nil
	}
	_, err := r.q.Exec(ctx,
		`UPDATE franchises SET name = $2 WHERE id = $1`,
		franchise.ID, franchise.Name,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrFranchiseNameConflict
		}
		return nil, fmt.Errorf("update franchise: %w", err)
	}
	return franchise, nil
}

// FindByID obtiene una franquicia por ID. Devuelve (nil, nil) si no existe.
func (r *FranchiseRepo) FindByID(ctx context.Context, id int64) (*entity.Franchise, error) {
	var f entity.Franchise
	err := r.q.QueryRow(ctx,
		`SELECT id, name FROM franchises WHERE id = $1`, id,
	).Scan(&f.ID, &f.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get franchise: %w", err)
	}
	return &f, nil
}

// ExistsByName comprueba existencia por nombre exacto (case-sensitive).
func (r *FranchiseRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM franchises WHERE name = $1)`, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists franchise by name: %w", err)
	}
	return exists, nil
}
