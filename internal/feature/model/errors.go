package model

import "errors"

var (
	// ErrFeatureNotFound indicates that the requested feature request does not exist.
	ErrFeatureNotFound = errors.New("feature request not found")
)
