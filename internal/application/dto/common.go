package dto

import "time"

// ErrorResponse cuerpo de error estándar de la API.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
}
