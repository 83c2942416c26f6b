package model

import "errors"

var (
	// ErrCodeChangeNotFound indicates that the requested entry does not exist.
	ErrCodeChangeNotFound = errors.New("code change not found")
)
