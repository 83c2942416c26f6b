// Package apperror defines the application error taxonomy shared by all
// HTTP handlers. Services return these; handlers translate them into one
// JSON error response at the boundary.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrAuth       = errors.New("unauthorized")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
)

// AppError carries a category sentinel plus a human-readable message
// suitable for direct display.
type AppError struct {
	Err     error  // category sentinel
	Message string // human-readable error message
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Validation returns a 400-category error for a malformed or missing field.
func Validation(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Unauthorized returns a 401-category error. The message is deliberately
// generic so callers never learn which credential field was wrong.
func Unauthorized(message string) *AppError {
	return &AppError{
		Err:     ErrAuth,
		Message: message,
	}
}

// Forbidden returns a 403-category error.
func Forbidden(message string) *AppError {
	return &AppError{
		Err:     ErrForbidden,
		Message: message,
	}
}

// Conflict returns a 409-category error for a duplicate unique field.
func Conflict(resource, field string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: fmt.Sprintf("%s with this %s already exists", resource, field),
		Field:   field,
	}
}

// NotFound returns a 404-category error.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}
