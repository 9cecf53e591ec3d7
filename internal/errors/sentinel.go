package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid input or configuration.
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a template, barrel file or directory was not found.
	ErrNotFound = errors.New("not found")

	// ErrExists indicates the scaffold target already exists.
	ErrExists = errors.New("already exists")
)
