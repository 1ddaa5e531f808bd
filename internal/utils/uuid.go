package utils

import "github.com/google/uuid"

// NewTokenID returns a time-ordered UUIDv7 for the "jti" claim, so two
// tokens issued within the same second never collide. A random v4 is
// returned if the v7 clock source fails.
func NewTokenID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
