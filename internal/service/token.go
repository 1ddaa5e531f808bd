package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// TokenIssuer signs and verifies access and refresh tokens.
//
// Each kind has its own HMAC secret and lifetime, and the kind is embedded in
// the claims: a token of one kind never verifies as the other. All state is
// read-only after construction.
type TokenIssuer struct {
	issuer  string
	secrets map[models.TokenKind][]byte
	ttls    map[models.TokenKind]time.Duration

	now   func() time.Time
	newID func() string
	parse *jwt.Parser
}

// TokenIssuerOption configures a [TokenIssuer].
type TokenIssuerOption func(*TokenIssuer)

// WithClock replaces the wall clock used for issue and expiry times.
func WithClock(now func() time.Time) TokenIssuerOption {
	return func(t *TokenIssuer) {
		t.now = now
	}
}

// NewTokenIssuer builds a TokenIssuer from the token settings in cfg.
func NewTokenIssuer(cfg config.App, opts ...TokenIssuerOption) *TokenIssuer {
	t := &TokenIssuer{
		issuer: cfg.TokenIssuer,
		secrets: map[models.TokenKind][]byte{
			models.AccessToken:  []byte(cfg.AccessTokenSecret),
			models.RefreshToken: []byte(cfg.RefreshTokenSecret),
		},
		ttls: map[models.TokenKind]time.Duration{
			models.AccessToken:  cfg.AccessTokenDuration,
			models.RefreshToken: cfg.RefreshTokenDuration,
		},
		now:   time.Now,
		newID: utils.NewTokenID,
	}
	for _, opt := range opts {
		opt(t)
	}

	t.parse = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(t.now),
	)

	return t
}

// IssueAccessToken returns a signed short-lived access token for userID.
func (t *TokenIssuer) IssueAccessToken(userID int64) (string, error) {
	return t.issue(userID, models.AccessToken)
}

// IssueRefreshToken returns a signed long-lived refresh token for userID.
func (t *TokenIssuer) IssueRefreshToken(userID int64) (string, error) {
	return t.issue(userID, models.RefreshToken)
}

// IssuePair returns a fresh access and refresh token for userID.
func (t *TokenIssuer) IssuePair(userID int64) (models.TokenPair, error) {
	access, err := t.IssueAccessToken(userID)
	if err != nil {
		return models.TokenPair{}, err
	}
	refresh, err := t.IssueRefreshToken(userID)
	if err != nil {
		return models.TokenPair{}, err
	}

	return models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Verify parses token and checks its signature, issuer, expiry and kind.
// Every failure wraps ErrTokenInvalid.
func (t *TokenIssuer) Verify(token string, expected models.TokenKind) (*models.Claims, error) {
	secret, ok := t.secrets[expected]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTokenKind, expected)
	}

	claims := &models.Claims{}
	_, err := t.parse.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	if claims.Kind != expected {
		return nil, fmt.Errorf("%w: expected %s token, got %q", ErrTokenInvalid, expected, claims.Kind)
	}
	if _, err = claims.UserID(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	return claims, nil
}

// RefreshTTL returns the lifetime of refresh tokens.
func (t *TokenIssuer) RefreshTTL() time.Duration {
	return t.ttls[models.RefreshToken]
}

func (t *TokenIssuer) issue(userID int64, kind models.TokenKind) (string, error) {
	now := t.now()
	claims := models.Claims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttls[kind])),
			ID:        t.newID(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secrets[kind])
	if err != nil {
		return "", fmt.Errorf("%w: %s token: %w", ErrSigningFailure, kind, err)
	}

	return signed, nil
}
