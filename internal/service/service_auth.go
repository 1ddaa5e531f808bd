package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// authService is the concrete implementation of AuthService.
//
// It composes a CredentialStore for identity lookups, a PasswordVerifier,
// a TokenIssuer and a SessionRegistry. The only state shared between
// concurrent flows is the session registry entry of a user; refreshes update
// it with a single atomic Rotate call.
type authService struct {
	// credentialStore is used to create and look up users.
	credentialStore store.CredentialStore

	// sessions tracks the active refresh tokens.
	sessions SessionRegistry

	passwords PasswordVerifier
	tokens    *TokenIssuer

	// distinguishUnknownUser reports an unknown identifier on login as
	// ErrUserNotFound instead of ErrInvalidCredentials.
	distinguishUnknownUser bool

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService from its collaborators.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	credentialStore store.CredentialStore,
	sessions SessionRegistry,
	passwords PasswordVerifier,
	tokens *TokenIssuer,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		credentialStore:        credentialStore,
		sessions:               sessions,
		passwords:              passwords,
		tokens:                 tokens,
		distinguishUnknownUser: cfg.DistinguishUnknownUser,
		logger:                 logger,
	}
}

// Register creates a new user account.
//
// The username is lower-cased and the password is hashed before the record is
// saved. Returns the public view of the stored user or:
//   - ErrValidation if a required field is blank.
//   - ErrUserAlreadyExists if the username or email is taken.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx).WithSpan(ctx)

	if isBlank(request.Username) || isBlank(request.Email) || isBlank(request.FullName) || isBlank(request.Password) {
		return models.User{}, fmt.Errorf("%w: all fields are required", ErrValidation)
	}

	hash, err := a.passwords.Hash(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	user, err := a.credentialStore.Save(ctx, models.User{
		Username:     models.NormalizeUsername(request.Username),
		Email:        strings.TrimSpace(request.Email),
		FullName:     strings.TrimSpace(request.FullName),
		Avatar:       request.Avatar,
		CoverImage:   request.CoverImage,
		PasswordHash: hash,
	}, store.SaveOptions{})
	switch {
	case errors.Is(err, store.ErrUserAlreadyExists):
		log.Info().Str("username", models.NormalizeUsername(request.Username)).Msg("user already exists")
		return models.User{}, fmt.Errorf("%w: %w", ErrUserAlreadyExists, err)
	case errors.Is(err, store.ErrInvalidUser):
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	case err != nil:
		log.Err(err).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")
	return user.Public(), nil
}

// Login authenticates a user by username or email and password, issues a
// token pair and records the refresh token as the active session.
//
// Returns:
//   - ErrValidation if the identifier or the password is missing.
//   - ErrInvalidCredentials for an unknown identifier or a wrong password
//     (ErrUserNotFound for an unknown identifier when configured to
//     distinguish them).
//   - ErrCredentialStoreCorruption if the stored hash is malformed.
//   - ErrSigningFailure if a token cannot be signed.
//
// A failed login never touches the session registry.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.LoginResult, error) {
	log := logger.FromContext(ctx).WithSpan(ctx)

	identifier := strings.TrimSpace(request.LoginIdentifier())
	if identifier == "" {
		return models.LoginResult{}, fmt.Errorf("%w: username or email is required", ErrValidation)
	}
	if request.Password == "" {
		return models.LoginResult{}, fmt.Errorf("%w: password is required", ErrValidation)
	}

	user, err := a.credentialStore.FindByUsernameOrEmail(ctx, identifier)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Msg("login attempt for unknown user")
		if a.distinguishUnknownUser {
			return models.LoginResult{}, ErrUserNotFound
		}
		return models.LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by username or email failed")
		return models.LoginResult{}, fmt.Errorf("user search by username or email failed: %w", err)
	}
	log = log.WithUserID(user.UserID)

	ok, err := a.passwords.Verify(request.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Msg("stored password hash cannot be used")
		return models.LoginResult{}, err
	}
	if !ok {
		log.Info().Msg("wrong password")
		return models.LoginResult{}, ErrInvalidCredentials
	}

	pair, err := a.tokens.IssuePair(user.UserID)
	if err != nil {
		log.Err(err).Msg("token issuance failed")
		return models.LoginResult{}, err
	}

	if err = a.sessions.Record(ctx, user.UserID, pair.RefreshToken); err != nil {
		log.Err(err).Msg("recording session failed")
		return models.LoginResult{}, fmt.Errorf("recording session failed: %w", err)
	}

	log.Info().Msg("user logged in")
	return models.LoginResult{
		User:         user.Public(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// Logout revokes the sessions of an authenticated user. Logging out twice is
// not an error.
func (a *authService) Logout(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx).WithSpan(ctx).WithUserID(userID)

	if err := a.sessions.Clear(ctx, userID); err != nil {
		log.Err(err).Msg("clearing session failed")
		return err
	}

	log.Info().Msg("user logged out")
	return nil
}

// Refresh exchanges a valid, active refresh token for a new token pair and
// makes the new refresh token the active one in place of the presented one.
//
// Every rejection of the presented token wraps ErrUnauthorized: a missing,
// malformed, expired or foreign token, an unknown subject, or a token that
// was already rotated or revoked (ErrRefreshTokenReused). Nothing is written
// unless the final rotation succeeds.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	log := logger.FromContext(ctx).WithSpan(ctx)

	if strings.TrimSpace(refreshToken) == "" {
		return models.TokenPair{}, ErrRefreshTokenMissing
	}

	claims, err := a.tokens.Verify(refreshToken, models.RefreshToken)
	if err != nil {
		log.Info().Err(err).Msg("refresh token rejected")
		return models.TokenPair{}, err
	}
	userID, _ := claims.UserID()
	log = log.WithUserID(userID)

	if _, err = a.credentialStore.FindByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Msg("refresh token subject does not exist")
			return models.TokenPair{}, fmt.Errorf("%w: unknown subject", ErrTokenInvalid)
		}
		log.Err(err).Msg("user search by id failed")
		return models.TokenPair{}, fmt.Errorf("user search by id failed: %w", err)
	}

	pair, err := a.tokens.IssuePair(userID)
	if err != nil {
		log.Err(err).Msg("token issuance failed")
		return models.TokenPair{}, err
	}

	err = a.sessions.Rotate(ctx, userID, refreshToken, pair.RefreshToken)
	switch {
	case errors.Is(err, ErrSessionMismatch):
		log.Warn().Str("jti", claims.ID).Msg("refresh token is not active, possible replay")
		return models.TokenPair{}, ErrRefreshTokenReused
	case errors.Is(err, ErrUserNotFound):
		return models.TokenPair{}, fmt.Errorf("%w: unknown subject", ErrTokenInvalid)
	case err != nil:
		log.Err(err).Msg("rotating session failed")
		return models.TokenPair{}, fmt.Errorf("rotating session failed: %w", err)
	}

	log.Info().Msg("session refreshed")
	return pair, nil
}

// CurrentUser returns the public view of the user with the given id.
func (a *authService) CurrentUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.credentialStore.FindByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user.Public(), nil
}

// ParseAccessToken verifies an access token. Any failure wraps
// ErrTokenInvalid.
func (a *authService) ParseAccessToken(ctx context.Context, accessToken string) (*models.Claims, error) {
	return a.tokens.Verify(accessToken, models.AccessToken)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
