package entity

// Franchise representa una franquicia (entidad raíz de la jerarquía).
// ID es 0 antes de persistir; el almacenamiento lo asigna en el insert.
type Franchise struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
