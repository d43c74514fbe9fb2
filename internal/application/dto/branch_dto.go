package dto

// BranchRequest cuerpo para crear o renombrar una sucursal.
type BranchRequest struct {
	Name string `json:"name" example:"Sucursal Norte"`
}

// BranchResponse representación pública de una sucursal.
type BranchResponse struct {
	ID          int64  `json:"id"`
	FranchiseID int64  `json:"franchiseId"`
	Name        string `json:"name"`
}
