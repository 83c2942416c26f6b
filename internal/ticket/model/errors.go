package model

import "errors"

var (
	// ErrTicketNotFound indicates that the requested ticket does not exist.
	ErrTicketNotFound = errors.New("ticket not found")
)
