package domain

import (
	"errors"
	"fmt"
)

// Categorias de erro. Todo erro retornado pelos serviços deriva de uma delas
// (via %w) ou é tratado como inesperado.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("resource not found")
	ErrConflict   = errors.New("conflict with current state")
	ErrTransient  = errors.New("temporary store failure")
)

// Erros específicos
var (
	ErrCustomerNotFound  = fmt.Errorf("customer: %w", ErrNotFound)
	ErrProductNotFound   = fmt.Errorf("product: %w", ErrNotFound)
	ErrSupplierNotFound  = fmt.Errorf("supplier: %w", ErrNotFound)
	ErrSaleNotFound      = fmt.Errorf("sale: %w", ErrNotFound)
	ErrInsufficientStock = fmt.Errorf("insufficient stock: %w", ErrConflict)
	ErrInUse             = fmt.Errorf("resource is referenced by other records: %w", ErrConflict)
)

type ErrorKind int

const (
	KindUnexpected ErrorKind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindTransient
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindTransient:
		return "transient"
	default:
		return "unexpected"
	}
}

// KindOf classifica um erro na taxonomia acima
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnexpected
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrTransient):
		return KindTransient
	default:
		return KindUnexpected
	}
}

// ValidationError descreve qual campo da entrada é inválido
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Unwrap permite errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
