package domain

import "errors"

// Kind clasifica los errores de dominio. El adaptador HTTP mapea cada kind a
// un status code; los casos de uso solo producen errores de este tipo.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindInternal   Kind = "internal"
)

// Error es el error de dominio con discriminante explícito.
// Message es seguro para exponer al cliente; Cause (si existe) no lo es.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap expone la causa para errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewValidation crea un error de entrada inválida (HTTP 400).
func NewValidation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewNotFound crea un error de recurso inexistente (HTTP 404).
func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewConflict crea un error de nombre duplicado en su ámbito (HTTP 409).
func NewConflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// NewInternal envuelve un fallo técnico de infraestructura (HTTP 500).
// El mensaje original de la causa no se expone al cliente.
func NewInternal(cause error, message string) *Error {
	return &Error{Kind: KindInternal, Message: message, Cause: cause}
}

// KindOf devuelve el kind de un error de dominio, o KindInternal si el error
// no proviene del dominio (fallo técnico sin clasificar).
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// IsNotFound indica si el error es de recurso inexistente.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsConflict indica si el error es de nombre duplicado.
func IsConflict(err error) bool { return KindOf(err) == KindConflict }

// IsValidation indica si el error es de entrada inválida.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// Mensajes de negocio expuestos por la API (en inglés, como el contrato REST).
var (
	ErrFranchiseNotFound     = NewNotFound("Franchise not found")
	ErrBranchNotFound        = NewNotFound("Branch not found")
	ErrProductNotFound       = NewNotFound("Product not found")
	ErrFranchiseNameConflict = NewConflict("Franchise name already exists")
	ErrBranchNameConflict    = NewConflict("Branch name already exists")
	ErrProductNameConflict   = NewConflict("Product name already exists")
)
