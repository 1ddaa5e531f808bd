package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/validators"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// authValidationService rejects malformed requests before they reach the
// wrapped AuthService.
type authValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &authValidationService{
		validator: validators.NewAuthRequestValidator(),
	}
}

func (v *authValidationService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Register(ctx, request)
}

func (v *authValidationService) Login(ctx context.Context, request models.LoginRequest) (models.LoginResult, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Login(ctx, request)
}

func (v *authValidationService) Logout(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return fmt.Errorf("%w: no user id", ErrValidation)
	}

	return v.inner.Logout(ctx, userID)
}

// Refresh rejects a missing or malformed token as unauthorized, never as a
// validation error.
func (v *authValidationService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	err := v.validator.Validate(ctx, models.RefreshRequest{RefreshToken: refreshToken})
	switch {
	case errors.Is(err, validators.ErrEmptyRefreshToken):
		return models.TokenPair{}, ErrRefreshTokenMissing
	case err != nil:
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	return v.inner.Refresh(ctx, refreshToken)
}

func (v *authValidationService) CurrentUser(ctx context.Context, userID int64) (models.User, error) {
	if userID <= 0 {
		return models.User{}, fmt.Errorf("%w: no user id", ErrValidation)
	}

	return v.inner.CurrentUser(ctx, userID)
}

func (v *authValidationService) ParseAccessToken(ctx context.Context, accessToken string) (*models.Claims, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("%w: empty token", ErrTokenInvalid)
	}

	return v.inner.ParseAccessToken(ctx, accessToken)
}

func (v *authValidationService) Wrap(wrapper AuthService) AuthService {
	v.inner = wrapper
	return v
}
