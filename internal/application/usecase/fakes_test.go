package usecase_test

import (
	"context"
	"sort"

	"github.com/jhoicas/franquicias-api/internal/domain/entity"
	"github.com/jhoicas/franquicias-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Se comportan como el
// almacenamiento real (IDs autoincrementales, unicidad por lookup) y cuentan
// las escrituras para poder afirmar que una operación rechazada no escribió.

type fakeFranchiseRepo struct {
	franchises map[int64]*entity.Franchise
	nextID     int64
	saveCalls  int
	findErr    error
	existsErr  error
	saveErr    error
}

func newFakeFranchiseRepo() *fakeFranchiseRepo {
	return &fakeFranchiseRepo{franchises: make(map[int64]*entity.Franchise)}
}

func (f *fakeFranchiseRepo) seed(name string) *entity.Franchise {
	f.nextID++
	fr := &entity.Franchise{ID: f.nextID, Name: name}
	f.franchises[fr.ID] = fr
	return fr
}

func (f *fakeFranchiseRepo) Save(_ context.Context, franchise *entity.Franchise) (*entity.Franchise, error) {
	f.saveCalls++
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	if franchise.ID == 0 {
		f.nextID++
		franchise.ID = f.nextID
	}
	cp := *franchise
	f.franchises[franchise.ID] = &cp
	return franchise, nil
}

func (f *fakeFranchiseRepo) FindByID(_ context.Context, id int64) (*entity.Franchise, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	fr, ok := f.franchises[id]
	if !ok {
		return nil, nil
	}
	cp := *fr
	return &cp, nil
}

func (f *fakeFranchiseRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	for _, fr := range f.franchises {
		if fr.Name == name {
			return true, nil
		}
	}
	return false, nil
}

type fakeBranchRepo struct {
	branches  map[int64]*entity.Branch
	nextID    int64
	saveCalls int
}

func newFakeBranchRepo() *fakeBranchRepo {
	return &fakeBranchRepo{branches: make(map[int64]*entity.Branch)}
}

func (f *fakeBranchRepo) seed(franchiseID int64, name string) *entity.Branch {
	f.nextID++
	b := &entity.Branch{ID: f.nextID, FranchiseID: franchiseID, Name: name}
	f.branches[b.ID] = b
	return b
}

func (f *fakeBranchRepo) Save(_ context.Context, branch *entity.Branch) (*entity.Branch, error) {
	f.saveCalls++
	if branch.ID == 0 {
		f.nextID++
		branch.ID = f.nextID
	}
	cp := *branch
	f.branches[branch.ID] = &cp
	return branch, nil
}

func (f *fakeBranchRepo) FindByID(_ context.Context, id int64) (*entity.Branch, error) {
	b, ok := f.branches[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBranchRepo) FindByIDAndFranchiseID(_ context.Context, id, franchiseID int64) (*entity.Branch, error) {
	b, ok := f.branches[id]
	if !ok || b.FranchiseID != franchiseID {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBranchRepo) FindByFranchiseID(_ context.Context, franchiseID int64) ([]*entity.Branch, error) {
	var list []*entity.Branch
	for _, b := range f.branches {
		if b.FranchiseID == franchiseID {
			cp := *b
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (f *fakeBranchRepo) ExistsByNameAndFranchiseID(_ context.Context, name string, franchiseID int64) (bool, error) {
	for _, b := range f.branches {
		if b.FranchiseID == franchiseID && b.Name == name {
			return true, nil
		}
	}
	return false, nil
}

type fakeProductRepo struct {
	products    map[int64]*entity.Product
	branchRepo  *fakeBranchRepo
	nextID      int64
	saveCalls   int
	deleteCalls int
}

func newFakeProductRepo(branchRepo *fakeBranchRepo) *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]*entity.Product), branchRepo: branchRepo}
}

func (f *fakeProductRepo) seed(branchID int64, name string, stock int) *entity.Product {
	f.nextID++
	p := &entity.Product{ID: f.nextID, BranchID: branchID, Name: name, Stock: stock}
	f.products[p.ID] = p
	return p
}

func (f *fakeProductRepo) Save(_ context.Context, product *entity.Product) (*entity.Product, error) {
	f.saveCalls++
	if product.ID == 0 {
		f.nextID++
		product.ID = f.nextID
	}
	cp := *product
	f.products[product.ID] = &cp
	return product, nil
}

func (f *fakeProductRepo) FindByIDAndBranchID(_ context.Context, id, branchID int64) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok || p.BranchID != branchID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) ExistsByNameAndBranchID(_ context.Context, name string, branchID int64) (bool, error) {
	for _, p := range f.products {
		if p.BranchID == branchID && p.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) DeleteByID(_ context.Context, id int64) error {
	f.deleteCalls++
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) FindTopByBranchID(ctx context.Context, branchID int64) (*entity.Product, error) {
	top := f.topOf(branchID)
	if top == nil {
		return nil, nil
	}
	cp := *top
	return &cp, nil
}

func (f *fakeProductRepo) FindTopProductsByFranchiseID(ctx context.Context, franchiseID int64) ([]repository.BranchTopProductRow, error) {
	branches, _ := f.branchRepo.FindByFranchiseID(ctx, franchiseID)
	rows := make([]repository.BranchTopProductRow, 0, len(branches))
	for _, b := range branches {
		row := repository.BranchTopProductRow{BranchID: b.ID, BranchName: b.Name}
		if top := f.topOf(b.ID); top != nil {
			id, name, stock := top.ID, top.Name, top.Stock
			row.ProductID = &id
			row.ProductName = &name
			row.ProductStock = &stock
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// topOf devuelve el producto de mayor stock de la sucursal; con empate gana
// el de menor ID (desempate arbitrario, como en el almacenamiento real).
func (f *fakeProductRepo) topOf(branchID int64) *entity.Product {
	var top *entity.Product
	ids := make([]int64, 0, len(f.products))
	for id := range f.products {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		p := f.products[id]
		if p.BranchID != branchID {
			continue
		}
		if top == nil || p.Stock > top.Stock {
			top = p
		}
	}
	return top
}
