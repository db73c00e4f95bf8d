package repositories

import "errors"

// Sentinel errors shared by every repository implementation. Callers match
// them with errors.Is and translate to API errors at the service layer.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicate         = errors.New("duplicate unique field")
	ErrInsufficientStock = errors.New("insufficient stock")
)
