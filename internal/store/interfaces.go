package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialStore persists user records.
//
// Implementations must make UpdateField and SwapField atomic with respect to
// concurrent callers, the sweep in ClearExpiredSessions included: SwapField
// succeeds for at most one of several callers presenting the same expected
// value, and the extra assignments passed to either method land in the same
// write as the main field.
type CredentialStore interface {
	// FindByUsernameOrEmail returns the user whose username equals the
	// lower-cased identifier or whose email equals identifier as given.
	FindByUsernameOrEmail(ctx context.Context, identifier string) (models.User, error)
	// FindByID returns the user with the given id.
	FindByID(ctx context.Context, userID int64) (models.User, error)
	// Save inserts user when UserID is zero and replaces the whole record
	// otherwise. The stored user is returned.
	Save(ctx context.Context, user models.User, opts SaveOptions) (models.User, error)
	// UpdateField sets field and every assignment in also. A nil value
	// clears a field.
	UpdateField(ctx context.Context, userID int64, field Field, value any, also ...Assignment) error
	// SwapField sets field to next, plus every assignment in also, only if
	// the current value of field equals expected (nil matches a cleared
	// field). Returns ErrFieldMismatch otherwise.
	SwapField(ctx context.Context, userID int64, field Field, expected, next any, also ...Assignment) error
}

// ExpiredSessionCleaner removes refresh tokens whose stored expiry is before
// now. It returns the number of users affected.
type ExpiredSessionCleaner interface {
	ClearExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// SaveOptions tunes a single [CredentialStore.Save] call.
type SaveOptions struct {
	// SkipValidation saves the record without checking required fields.
	SkipValidation bool
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
