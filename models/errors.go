package models

import "github.com/pkg/errors"

// Sentinel errors used at the handler boundary to pick an HTTP status.
// Anything else is reported as a generic internal error, details go to the
// log only.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrAlreadyExists   = errors.New("already exists")
)
