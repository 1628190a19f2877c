package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInsufficientStock  = errors.New("not enough stock for this operation")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrConflict           = errors.New("conflict with current state")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUnavailable        = errors.New("service not configured")
)

// Conflictos con mensaje fijo; errors.Is(err, ErrConflict) se cumple para ambos.
var (
	ErrSupplierHasProducts = fmt.Errorf("%w: cannot delete supplier with products", ErrConflict)
	ErrProductHasMovements = fmt.Errorf("%w: product has stock movements", ErrConflict)
)
