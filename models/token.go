package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind distinguishes the two trust domains of issued tokens.
// An access token never validates as a refresh token and vice versa.
type TokenKind string

const (
	// AccessToken is the short-lived token presented on every request.
	AccessToken TokenKind = "access"
	// RefreshToken is the long-lived token exchanged for a new pair.
	RefreshToken TokenKind = "refresh"
)

// String implements [fmt.Stringer].
func (k TokenKind) String() string {
	return string(k)
}

// Claims is the payload embedded in every issued JWT.
//
// The standard claim set carries the subject (user id), issuer, issue and
// expiry timestamps and a unique token id (jti). Kind binds the token to one
// trust domain.
type Claims struct {
	// Kind is the token trust domain ("access" or "refresh").
	Kind TokenKind `json:"kind"`

	jwt.RegisteredClaims
}

// UserID parses the "sub" (subject) claim as a base-10 int64.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (c *Claims) UserID() (int64, error) {
	if c.Subject == "" {
		return 0, fmt.Errorf("error extracting UserID from token: empty subject")
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// TokenPair is produced once per issuance event (login or refresh) and is
// never mutated. A rotation supersedes it with a new pair.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
