package dto

// CreateProductRequest cuerpo para crear un producto en una sucursal.
// Stock es puntero para distinguir "campo ausente" de 0.
type CreateProductRequest struct {
	Name  string `json:"name" example:"Café molido 500g"`
	Stock *int   `json:"stock" example:"50"`
}

// UpdateProductNameRequest cuerpo para renombrar un producto.
type UpdateProductNameRequest struct {
	Name string `json:"name"`
}

// UpdateProductStockRequest cuerpo para actualizar el stock de un producto.
type UpdateProductStockRequest struct {
	Stock *int `json:"stock"`
}

// ProductResponse representación pública de un producto.
type ProductResponse struct {
	ID       int64  `json:"id"`
	BranchID int64  `json:"branchId"`
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
}

// ProductInfoResponse producto embebido en el reporte de top de productos.
type ProductInfoResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// BranchTopProductResponse entrada del reporte: producto de mayor stock de una sucursal.
type BranchTopProductResponse struct {
	BranchID   int64               `json:"branchId"`
	BranchName string              `json:"branchName"`
	Product    ProductInfoResponse `json:"product"`
}

// TopProductsResponse reporte de productos con mayor stock por sucursal.
// Branches omite las sucursales sin productos.
type TopProductsResponse struct {
	FranchiseID   int64                      `json:"franchiseId"`
	FranchiseName string                     `json:"franchiseName"`
	Branches      []BranchTopProductResponse `json:"branches"`
}
