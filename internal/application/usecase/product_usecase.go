package usecase

import (
	"context"

	"github.com/jhoicas/franquicias-api/internal/application/dto"
	"github.com/jhoicas/franquicias-api/internal/domain"
	"github.com/jhoicas/franquicias-api/internal/domain/entity"
	"github.com/jhoicas/franquicias-api/internal/domain/repository"
	"github.com/jhoicas/franquicias-api/internal/domain/validator"
)

// ProductUseCase casos de uso para productos. Toda operación verifica la
// cadena completa franquicia → sucursal → producto antes de tocar datos.
type ProductUseCase struct {
	productRepo   repository.ProductRepository
	branchRepo    repository.BranchRepository
	franchiseRepo repository.FranchiseRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	branchRepo repository.BranchRepository,
	franchiseRepo repository.FranchiseRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:   productRepo,
		branchRepo:    branchRepo,
		franchiseRepo: franchiseRepo,
	}
}

// Create crea un producto en una sucursal de la franquicia. El nombre es
// único dentro de la sucursal.
func (uc *ProductUseCase) Create(ctx context.Context, franchiseID, branchID int64, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validator.ProductName(in.Name); err != nil {
		return nil, err
	}
	if err := validator.ProductStock(in.Stock); err != nil {
		return nil, err
	}
	if _, err := uc.requireBranch(ctx, franchiseID, branchID, "create product"); err != nil {
		return nil, err
	}
	exists, err := uc.productRepo.ExistsByNameAndBranchID(ctx, in.Name, branchID)
	if err != nil {
		return nil, asDomainError(err, "create product")
	}
	if exists {
		return nil, domain.ErrProductNameConflict
	}
	saved, err := uc.productRepo.Save(ctx, &entity.Product{BranchID: branchID, Name: in.Name, Stock: *in.Stock})
	if err != nil {
		return nil, asDomainError(err, "create product")
	}
	return toProductResponse(saved), nil
}

// UpdateName renombra un producto, con excepción de self-match: renombrar al
// nombre que ya tiene no es conflicto.
func (uc *ProductUseCase) UpdateName(ctx context.Context, productID, branchID, franchiseID int64, in dto.UpdateProductNameRequest) (*dto.ProductResponse, error) {
	if err := validator.ProductName(in.Name); err != nil {
		return nil, err
	}
	existing, err := uc.requireProduct(ctx, productID, branchID, franchiseID, "update product name")
	if err != nil {
		return nil, err
	}
	exists, err := uc.productRepo.ExistsByNameAndBranchID(ctx, in.Name, branchID)
	if err != nil {
		return nil, asDomainError(err, "update product name")
	}
	if exists && existing.Name != in.Name {
		return nil, domain.ErrProductNameConflict
	}
	existing.Name = in.Name
	saved, err := uc.productRepo.Save(ctx, existing)
	if err != nil {
		return nil, asDomainError(err, "update product name")
	}
	return toProductResponse(saved), nil
}

// UpdateStock actualiza el stock de un producto. No hay chequeo de unicidad:
// el stock no es un campo de nombre.
func (uc *ProductUseCase) UpdateStock(ctx context.Context, productID, branchID, franchiseID int64, in dto.UpdateProductStockRequest) (*dto.ProductResponse, error) {
	if err := validator.ProductStock(in.Stock); err != nil {
		return nil, err
	}
	existing, err := uc.requireProduct(ctx, productID, branchID, franchiseID, "update product stock")
	if err != nil {
		return nil, err
	}
	existing.Stock = *in.Stock
	saved, err := uc.productRepo.Save(ctx, existing)
	if err != nil {
		return nil, asDomainError(err, "update product stock")
	}
	return toProductResponse(saved), nil
}

// Remove elimina un producto. Un producto que no pertenece a la sucursal
// indicada se trata igual que inexistente.
func (uc *ProductUseCase) Remove(ctx context.Context, productID, branchID, franchiseID int64) error {
	if _, err := uc.requireProduct(ctx, productID, branchID, franchiseID, "remove product"); err != nil {
		return err
	}
	if err := uc.productRepo.DeleteByID(ctx, productID); err != nil {
		return asDomainError(err, "remove product")
	}
	return nil
}

// TopProducts devuelve, por cada sucursal de la franquicia con al menos un
// producto, el producto de mayor stock. La existencia de la franquicia se
// verifica de forma explícita antes del query agregado: un resultado vacío
// significa "franquicia sin sucursales", nunca 404.
func (uc *ProductUseCase) TopProducts(ctx context.Context, franchiseID int64) (*dto.TopProductsResponse, error) {
	franchise, err := uc.franchiseRepo.FindByID(ctx, franchiseID)
	if err != nil {
		return nil, asDomainError(err, "top products")
	}
	if franchise == nil {
		return nil, domain.ErrFranchiseNotFound
	}
	rows, err := uc.productRepo.FindTopProductsByFranchiseID(ctx, franchiseID)
	if err != nil {
		return nil, asDomainError(err, "top products")
	}
	branches := make([]dto.BranchTopProductResponse, 0, len(rows))
	for _, row := range rows {
		// Sucursal sin productos: columnas de producto nulas, se omite.
		if row.ProductID == nil {
			continue
		}
		branches = append(branches, dto.BranchTopProductResponse{
			BranchID:   row.BranchID,
			BranchName: row.BranchName,
			Product: dto.ProductInfoResponse{
				ID:    *row.ProductID,
				Name:  *row.ProductName,
				Stock: *row.ProductStock,
			},
		})
	}
	return &dto.TopProductsResponse{
		FranchiseID:   franchise.ID,
		FranchiseName: franchise.Name,
		Branches:      branches,
	}, nil
}

// requireBranch verifica franquicia y pertenencia de la sucursal.
func (uc *ProductUseCase) requireBranch(ctx context.Context, franchiseID, branchID int64, op string) (*entity.Branch, error) {
	franchise, err := uc.franchiseRepo.FindByID(ctx, franchiseID)
	if err != nil {
		return nil, asDomainError(err, op)
	}
	if franchise == nil {
		return nil, domain.ErrFranchiseNotFound
	}
	branch, err := uc.branchRepo.FindByIDAndFranchiseID(ctx, branchID, franchiseID)
	if err != nil {
		return nil, asDomainError(err, op)
	}
	if branch == nil {
		return nil, domain.ErrBranchNotFound
	}
	return branch, nil
}

// requireProduct verifica la cadena completa y devuelve el producto.
func (uc *ProductUseCase) requireProduct(ctx context.Context, productID, branchID, franchiseID int64, op string) (*entity.Product, error) {
	if _, err := uc.requireBranch(ctx, franchiseID, branchID, op); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.FindByIDAndBranchID(ctx, productID, branchID)
	if err != nil {
		return nil, asDomainError(err, op)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{ID: p.ID, BranchID: p.BranchID, Name: p.Name, Stock: p.Stock}
}
