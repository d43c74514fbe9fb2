package dto

// FranchiseRequest cuerpo para crear o renombrar una franquicia.
type FranchiseRequest struct {
	Name string `json:"name" example:"Franquicia Central"`
}

// FranchiseResponse representación pública de una franquicia.
type FranchiseResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
