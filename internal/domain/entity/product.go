package entity

// Product representa un producto ofrecido en una sucursal.
// Stock nunca es negativo (validado antes de persistir).
type Product struct {
	ID       int64  `json:"id"`
	BranchID int64  `json:"branchId"`
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
}
