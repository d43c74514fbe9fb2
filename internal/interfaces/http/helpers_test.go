package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/franquicias-api/internal/application/usecase"
	"github.com/jhoicas/franquicias-api/internal/domain/entity"
	"github.com/jhoicas/franquicias-api/internal/domain/repository"
	apphttp "github.com/jhoicas/franquicias-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: app Fiber completa sobre repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	franchises map[int64]*entity.Franchise
	branches   map[int64]*entity.Branch
	products   map[int64]*entity.Product
	nextID     int64
}

func newMemStore() *memStore {
	return &memStore{
		franchises: make(map[int64]*entity.Franchise),
		branches:   make(map[int64]*entity.Branch),
		products:   make(map[int64]*entity.Product),
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

type memFranchiseRepo struct{ s *memStore }

func (r memFranchiseRepo) Save(_ context.Context, f *entity.Franchise) (*entity.Franchise, error) {
	if f.ID == 0 {
		f.ID = r.s.id()
	}
	cp := *f
	r.s.franchises[f.ID] = &cp
	return f, nil
}

func (r memFranchiseRepo) FindByID(_ context.Context, id int64) (*entity.Franchise, error) {
	f, ok := r.s.franchises[id]
	if !ok {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

func (r memFranchiseRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, f := range r.s.franchises {
		if f.Name == name {
			return true, nil
		}
	}
	return false, nil
}

type memBranchRepo struct{ s *memStore }

func (r memBranchRepo) Save(_ context.Context, b *entity.Branch) (*entity.Branch, error) {
	if b.ID == 0 {
		b.ID = r.s.id()
	}
	cp := *b
	r.s.branches[b.ID] = &cp
	return b, nil
}

func (r memBranchRepo) FindByID(_ context.Context, id int64) (*entity.Branch, error) {
	b, ok := r.s.branches[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r memBranchRepo) FindByIDAndFranchiseID(_ context.Context, id, franchiseID int64) (*entity.Branch, error) {
	b, ok := r.s.branches[id]
	if !ok || b.FranchiseID != franchiseID {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r memBranchRepo) FindByFranchiseID(_ context.Context, franchiseID int64) ([]*entity.Branch, error) {
	var list []*entity.Branch
	for _, b := range r.s.branches {
		if b.FranchiseID == franchiseID {
			cp := *b
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r memBranchRepo) ExistsByNameAndFranchiseID(_ context.Context, name string, franchiseID int64) (bool, error) {
	for _, b := range r.s.branches {
		if b.FranchiseID == franchiseID && b.Name == name {
			return true, nil
		}
	}
	return false, nil
}

type memProductRepo struct{ s *memStore }

func (r memProductRepo) Save(_ context.Context, p *entity.Product) (*entity.Product, error) {
	if p.ID == 0 {
		p.ID = r.s.id()
	}
	cp := *p
	r.s.products[p.ID] = &cp
	return p, nil
}

func (r memProductRepo) FindByIDAndBranchID(_ context.Context, id, branchID int64) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok || p.BranchID != branchID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r memProductRepo) ExistsByNameAndBranchID(_ context.Context, name string, branchID int64) (bool, error) {
	for _, p := range r.s.products {
		if p.BranchID == branchID && p.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r memProductRepo) DeleteByID(_ context.Context, id int64) error {
	delete(r.s.products, id)
	return nil
}

func (r memProductRepo) FindTopByBranchID(_ context.Context, branchID int64) (*entity.Product, error) {
	p := r.topOf(branchID)
	if p == nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r memProductRepo) FindTopProductsByFranchiseID(ctx context.Context, franchiseID int64) ([]repository.BranchTopProductRow, error) {
	branches, _ := memBranchRepo{r.s}.FindByFranchiseID(ctx, franchiseID)
	rows := make([]repository.BranchTopProductRow, 0, len(branches))
	for _, b := range branches {
		row := repository.BranchTopProductRow{BranchID: b.ID, BranchName: b.Name}
		if top := r.topOf(b.ID); top != nil {
			id, name, stock := top.ID, top.Name, top.Stock
			row.ProductID = &id
			row.ProductName = &name
			row.ProductStock = &stock
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r memProductRepo) topOf(branchID int64) *entity.Product {
	ids := make([]int64, 0, len(r.s.products))
	for id := range r.s.products {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var top *entity.Product
	for _, id := range ids {
		p := r.s.products[id]
		if p.BranchID != branchID {
			continue
		}
		if top == nil || p.Stock > top.Stock {
			top = p
		}
	}
	return top
}

// buildTestApp arma la app Fiber con los casos de uso reales sobre los
// repositorios en memoria.
func buildTestApp() (*fiber.App, *memStore) {
	store := newMemStore()
	franchiseRepo := memFranchiseRepo{store}
	branchRepo := memBranchRepo{store}
	productRepo := memProductRepo{store}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		FranchiseUC: usecase.NewFranchiseUseCase(franchiseRepo),
		BranchUC:    usecase.NewBranchUseCase(branchRepo, franchiseRepo),
		ProductUC:   usecase.NewProductUseCase(productRepo, branchRepo, franchiseRepo),
	})
	return app, store
}

// doJSON lanza una petición con cuerpo JSON y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodifica el cuerpo JSON de la respuesta en un mapa.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
