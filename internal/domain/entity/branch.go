package entity

// Branch representa una sucursal de una franquicia.
// FranchiseID es una referencia por identificador, no un puntero de dominio:
// la navegación de la relación siempre pasa por el repositorio.
type Branch struct {
	ID          int64  `json:"id"`
	FranchiseID int64  `json:"franchiseId"`
	Name        string `json:"name"`
}
