package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/franquicias-api/internal/application/dto"
	"github.com/jhoicas/franquicias-api/internal/domain"
	"github.com/jhoicas/franquicias-api/internal/domain/entity"
	"github.com/jhoicas/franquicias-api/internal/domain/repository"
	"github.com/jhoicas/franquicias-api/internal/domain/validator"
)

// FranchiseUseCase casos de uso para franquicias: creación y renombrado.
type FranchiseUseCase struct {
	repo repository.FranchiseRepository
}

// NewFranchiseUseCase construye el caso de uso.
func NewFranchiseUseCase(repo repository.FranchiseRepository) *FranchiseUseCase {
	return &FranchiseUseCase{repo: repo}
}

// Create crea una franquicia. El nombre es único a nivel global.
func (uc *FranchiseUseCase) Create(ctx context.Context, in dto.FranchiseRequest) (*dto.FranchiseResponse, error) {
	if err := validator.FranchiseName(in.Name); err != nil {
		return nil, err
	}
	exists, err := uc.repo.ExistsByName(ctx, in.Name)
	if err != nil {
		return nil, asDomainError(err, "create franchise")
	}
	if exists {
		return nil, domain.ErrFranchiseNameConflict
	}
	saved, err := uc.repo.Save(ctx, &entity.Franchise{Name: in.Name})
	if err != nil {
		return nil, asDomainError(err, "create franchise")
	}
	return toFranchiseResponse(saved), nil
}

// UpdateName renombra una franquicia. Renombrar al nombre actual no es
// conflicto (excepción de self-match).
func (uc *FranchiseUseCase) UpdateName(ctx context.Context, id int64, in dto.FranchiseRequest) (*dto.FranchiseResponse, error) {
	if err := validator.FranchiseName(in.Name); err != nil {
		return nil, err
	}
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, asDomainError(err, "update franchise name")
	}
	if existing == nil {
		return nil, domain.ErrFranchiseNotFound
	}
	exists, err := uc.repo.ExistsByName(ctx, in.Name)
	if err != nil {
		return nil, asDomainError(err, "update franchise name")
	}
	if exists && existing.Name != in.Name {
		return nil, domain.ErrFranchiseNameConflict
	}
	existing.Name = in.Name
	saved, err := uc.repo.Save(ctx, existing)
	if err != nil {
		return nil, asDomainError(err, "update franchise name")
	}
	return toFranchiseResponse(saved), nil
}

func toFranchiseResponse(f *entity.Franchise) *dto.FranchiseResponse {
	return &dto.FranchiseResponse{ID: f.ID, Name: f.Name}
}

// asDomainError deja pasar errores de dominio (ej. conflicto 23505 mapeado
// por el adaptador) y envuelve el resto como error técnico sin filtrar
// detalle interno al cliente.
func asDomainError(err error, op string) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return de
	}
	return domain.NewInternal(fmt.Errorf("%s: %w", op, err), "Internal server error")
}
