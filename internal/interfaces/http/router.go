package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/franquicias-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	FranchiseUC *usecase.FranchiseUseCase
	BranchUC    *usecase.BranchUseCase
	ProductUC   *usecase.ProductUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	franchiseHandler := NewFranchiseHandler(deps.FranchiseUC)
	branchHandler := NewBranchHandler(deps.BranchUC)
	productHandler := NewProductHandler(deps.ProductUC)

	franchises := app.Group("/franchises")
	franchises.Post("/", franchiseHandler.Create)
	franchises.Put("/:franchiseId", franchiseHandler.UpdateName)
	franchises.Get("/:franchiseId/top-products", productHandler.TopProducts)

	branches := franchises.Group("/:franchiseId/branches")
	branches.Post("/", branchHandler.Create)
	branches.Put("/:branchId", branchHandler.UpdateName)

	products := branches.Group("/:branchId/products")
	products.Post("/", productHandler.Create)
	products.Put("/:productId", productHandler.UpdateName)
	products.Patch("/:productId/stock", productHandler.UpdateStock)
	products.Delete("/:productId", productHandler.Remove)
}
