package usecase

import (
	"context"

	"github.com/jhoicas/franquicias-api/internal/application/dto"
	"github.com/jhoicas/franquicias-api/internal/domain"
	"github.com/jhoicas/franquicias-api/internal/domain/entity"
	"github.com/jhoicas/franquicias-api/internal/domain/repository"
	"github.com/jhoicas/franquicias-api/internal/domain/validator"
)

// BranchUseCase casos de uso para sucursales. Toda operación verifica primero
// que la franquicia padre exista.
type BranchUseCase struct {
	branchRepo    repository.BranchRepository
	franchiseRepo repository.FranchiseRepository
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(branchRepo repository.BranchRepository, franchiseRepo repository.FranchiseRepository) *BranchUseCase {
	return &BranchUseCase{branchRepo: branchRepo, franchiseRepo: franchiseRepo}
}

// Create crea una sucursal bajo una franquicia. El nombre es único dentro de
// la franquicia; el mismo nombre bajo otra franquicia es válido.
func (uc *BranchUseCase) Create(ctx context.Context, franchiseID int64, in dto.BranchRequest) (*dto.BranchResponse, error) {
	if err := validator.BranchName(in.Name); err != nil {
		return nil, err
	}
	franchise, err := uc.franchiseRepo.FindByID(ctx, franchiseID)
	if err != nil {
		return nil, asDomainError(err, "create branch")
	}
	if franchise == nil {
		return nil, domain.ErrFranchiseNotFound
	}
	exists, err := uc.branchRepo.ExistsByNameAndFranchiseID(ctx, in.Name, franchiseID)
	if err != nil {
		return nil, asDomainError(err, "create branch")
	}
	if exists {
		return nil, domain.ErrBranchNameConflict
	}
	saved, err := uc.branchRepo.Save(ctx, &entity.Branch{FranchiseID: franchiseID, Name: in.Name})
	if err != nil {
		return nil, asDomainError(err, "create branch")
	}
	return toBranchResponse(saved), nil
}

// UpdateName renombra una sucursal. La sucursal debe pertenecer a la
// franquicia indicada; un mismatch equivale a inexistente.
func (uc *BranchUseCase) UpdateName(ctx context.Context, branchID, franchiseID int64, in dto.BranchRequest) (*dto.BranchResponse, error) {
	if err := validator.BranchName(in.Name); err != nil {
		return nil, err
	}
	franchise, err := uc.franchiseRepo.FindByID(ctx, franchiseID)
	if err != nil {
		return nil, asDomainError(err, "update branch name")
	}
	if franchise == nil {
		return nil, domain.ErrFranchiseNotFound
	}
	existing, err := uc.branchRepo.FindByIDAndFranchiseID(ctx, branchID, franchiseID)
	if err != nil {
		return nil, asDomainError(err, "update branch name")
	}
	if existing == nil {
		return nil, domain.ErrBranchNotFound
	}
	exists, err := uc.branchRepo.ExistsByNameAndFranchiseID(ctx, in.Name, franchiseID)
	if err != nil {
		return nil, asDomainError(err, "update branch name")
	}
	if exists && existing.Name != in.Name {
		return nil, domain.ErrBranchNameConflict
	}
	existing.Name = in.Name
	saved, err := uc.branchRepo.Save(ctx, existing)
	if err != nil {
		return nil, asDomainError(err, "update branch name")
	}
	return toBranchResponse(saved), nil
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	return &dto.BranchResponse{ID: b.ID, FranchiseID: b.FranchiseID, Name: b.Name}
}
