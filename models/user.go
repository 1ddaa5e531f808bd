package models

import (
	"strings"
	"time"
)

// User represents an account entity used for authentication.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user. Immutable.
	UserID int64 `json:"id"`

	// Username is the unique user handle. It is stored and compared
	// lower-cased, see [NormalizeUsername].
	Username string `json:"username"`

	// Email is the unique e-mail address of the user.
	Email string `json:"email"`

	// FullName is the display name of the user.
	FullName string `json:"fullName"`

	// Avatar is an opaque URL of the user's avatar image.
	Avatar string `json:"avatar,omitempty"`

	// CoverImage is an opaque URL of the user's cover image.
	CoverImage string `json:"coverImage,omitempty"`

	// PasswordHash is the slow hash of the user's password.
	// It is set once at creation and never serialized.
	PasswordHash string `json:"-"`

	// RefreshToken is the single refresh token currently valid for the user.
	// Empty means no active session. Never serialized.
	RefreshToken string `json:"-"`

	// RefreshTokenExpiresAt is the expiry of RefreshToken. Zero when
	// RefreshToken is empty.
	RefreshTokenExpiresAt time.Time `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last change of the record.
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public returns a copy of u with the password hash and the refresh token
// removed. Every user value leaving the service layer goes through it.
func (u User) Public() User {
	u.PasswordHash = ""
	u.RefreshToken = ""
	u.RefreshTokenExpiresAt = time.Time{}
	return u
}

// NormalizeUsername trims and lower-cases a username before it is compared
// or stored.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
