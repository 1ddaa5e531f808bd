package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-auth-keeper/internal/mock"
	"github.com/MKhiriev/go-auth-keeper/internal/validators"
	"github.com/MKhiriev/go-auth-keeper/models"
)

func newValidationFixture(t *testing.T) (AuthService, *mock.MockAuthService) {
	t.Helper()
	inner := mock.NewMockAuthService(gomock.NewController(t))
	return NewAuthValidationService().Wrap(inner), inner
}

func TestValidation_RegisterRejectsBeforeInner(t *testing.T) {
	svc, _ := newValidationFixture(t)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Username: "alice",
		FullName: "Alice",
		Email:    "not-an-email",
		Password: "pw123!",
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrInvalidEmail)
}

func TestValidation_RegisterPassesValidRequest(t *testing.T) {
	svc, inner := newValidationFixture(t)
	ctx := context.Background()
	request := models.RegisterRequest{
		Username: "alice",
		FullName: "Alice",
		Email:    "alice@example.com",
		Password: "pw123!",
	}

	inner.EXPECT().Register(ctx, request).Return(models.User{UserID: 1}, nil)

	user, err := svc.Register(ctx, request)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestValidation_Login(t *testing.T) {
	svc, inner := newValidationFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, models.LoginRequest{Password: "pw123!"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrEmptyIdentifier)

	request := models.LoginRequest{Email: "alice@example.com", Password: "pw123!"}
	inner.EXPECT().Login(ctx, request).Return(models.LoginResult{AccessToken: "a", RefreshToken: "r"}, nil)

	result, err := svc.Login(ctx, request)
	require.NoError(t, err)
	assert.Equal(t, "r", result.RefreshToken)
}

func TestValidation_RefreshIsUnauthorizedNotInvalid(t *testing.T) {
	svc, inner := newValidationFixture(t)
	ctx := context.Background()

	_, err := svc.Refresh(ctx, "")
	assert.ErrorIs(t, err, ErrRefreshTokenMissing)
	assert.NotErrorIs(t, err, ErrValidation)

	_, err = svc.Refresh(ctx, "definitely not a jwt")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrValidation)

	token := "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.c2ln"
	inner.EXPECT().Refresh(ctx, token).Return(models.TokenPair{RefreshToken: "next"}, nil)
	pair, err := svc.Refresh(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "next", pair.RefreshToken)
}

func TestValidation_UserIDRequired(t *testing.T) {
	svc, inner := newValidationFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Logout(ctx, 0), ErrValidation)
	_, err := svc.CurrentUser(ctx, -1)
	assert.ErrorIs(t, err, ErrValidation)

	inner.EXPECT().Logout(ctx, int64(3)).Return(nil)
	assert.NoError(t, svc.Logout(ctx, 3))
}

func TestValidation_ParseAccessToken(t *testing.T) {
	svc, inner := newValidationFixture(t)
	ctx := context.Background()

	_, err := svc.ParseAccessToken(ctx, "")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	inner.EXPECT().ParseAccessToken(ctx, "token").Return(&models.Claims{Kind: models.AccessToken}, nil)
	claims, err := svc.ParseAccessToken(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, models.AccessToken, claims.Kind)
}
