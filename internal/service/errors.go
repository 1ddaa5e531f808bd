package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by [AuthService] matches exactly one of
// them with errors.Is.
var (
	// ErrValidation reports missing or malformed caller input.
	ErrValidation = errors.New("validation error")

	// ErrNotFound reports that no user matches the request.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized reports a bad password or an invalid, expired,
	// mismatched or replayed token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict reports that the request collides with existing state.
	ErrConflict = errors.New("conflict")

	// ErrCredentialStoreCorruption reports a stored record that cannot be
	// used, e.g. a malformed password hash. Never retried.
	ErrCredentialStoreCorruption = errors.New("credential store corruption")

	// ErrSigningFailure reports that a token could not be issued. It points
	// at a misconfigured secret and is never retried.
	ErrSigningFailure = errors.New("token signing failure")
)

var (
	ErrInvalidCredentials  = fmt.Errorf("%w: invalid user credentials", ErrUnauthorized)
	ErrUserNotFound        = fmt.Errorf("%w: user does not exist", ErrNotFound)
	ErrUserAlreadyExists   = fmt.Errorf("%w: user with email or username already exists", ErrConflict)
	ErrTokenInvalid        = fmt.Errorf("%w: invalid token", ErrUnauthorized)
	ErrRefreshTokenMissing = fmt.Errorf("%w: refresh token is required", ErrUnauthorized)
	ErrRefreshTokenReused  = fmt.Errorf("%w: refresh token is expired or used", ErrUnauthorized)
	ErrUnknownTokenKind    = fmt.Errorf("%w: unknown token kind", ErrTokenInvalid)
)

// ErrSessionMismatch is returned by [SessionRegistry.Rotate] when the
// presented token is no longer an active session of the user.
var ErrSessionMismatch = errors.New("presented refresh token is not active")

var ErrVersionIsNotSpecified = errors.New("app version is not specified")
