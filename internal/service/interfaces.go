package service

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AuthServiceWrapper

// AuthService orchestrates registration and the login, logout and refresh
// flows. Every method returns an error that matches one of the error kinds
// declared in errors.go.
type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.LoginResult, error)
	Logout(ctx context.Context, userID int64) error
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)

	CurrentUser(ctx context.Context, userID int64) (models.User, error)
	ParseAccessToken(ctx context.Context, accessToken string) (*models.Claims, error)
}

// SessionRegistry tracks the refresh tokens currently valid for a user.
// The policy (one session per user or many) is an implementation detail.
type SessionRegistry interface {
	// Record makes token an active session of the user. Under the single
	// session policy it replaces any previous token.
	Record(ctx context.Context, userID int64, token string) error
	// Active returns the most recently recorded token of the user, or an
	// empty string when the user has no session.
	Active(ctx context.Context, userID int64) (string, error)
	// Clear revokes the sessions of the user. Clearing an absent session is
	// not an error.
	Clear(ctx context.Context, userID int64) error
	// Rotate atomically replaces presented with next. It returns
	// ErrSessionMismatch when presented is not active.
	Rotate(ctx context.Context, userID int64, presented, next string) error
}

// PasswordVerifier compares plaintext passwords with stored hashes.
type PasswordVerifier interface {
	// Verify returns false, nil on a mismatch and an error only when hash
	// is malformed.
	Verify(password, hash string) (bool, error)
	Hash(password string) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validation or tracing.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}
