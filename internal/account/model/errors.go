package model

import "errors"

var (
	// ErrAccountNotFound indicates that no account matches the identifier.
	ErrAccountNotFound = errors.New("account not found")
	// ErrProfileNotFound indicates that the requested profile does not exist.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateUsername indicates the username is already registered.
	ErrDuplicateUsername = errors.New("username already registered")
	// ErrDuplicateEmail indicates the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)
