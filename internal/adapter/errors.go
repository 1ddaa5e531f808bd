package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes. Callers use [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNoSession is returned when an operation needs tokens the adapter
	// does not hold.
	ErrNoSession = errors.New("no active session")
)
