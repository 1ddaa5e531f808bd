package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-auth-keeper/internal/service"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"reused refresh token", service.ErrRefreshTokenReused, http.StatusUnauthorized, "refresh token is expired or used"},
		{"wrapped invalid credentials", fmt.Errorf("login: %w", service.ErrInvalidCredentials), http.StatusUnauthorized, "invalid user credentials"},
		{"unknown token kind", service.ErrUnknownTokenKind, http.StatusUnauthorized, "invalid token"},
		{"bare unauthorized kind", service.ErrUnauthorized, http.StatusUnauthorized, "unauthorized request"},
		{"missing access token", ErrMissingAccessToken, http.StatusUnauthorized, "unauthorized request"},
		{"user exists", service.ErrUserAlreadyExists, http.StatusConflict, "user with email or username already exists"},
		{"user not found", service.ErrUserNotFound, http.StatusNotFound, "user does not exist"},
		{"validation shows details", fmt.Errorf("%w: password is required", service.ErrValidation), http.StatusBadRequest, "validation error: password is required"},
		{"invalid json", fmt.Errorf("%w: unexpected EOF", ErrInvalidJSON), http.StatusBadRequest, ErrInvalidJSON.Error()},
		{"deadline", context.DeadlineExceeded, http.StatusServiceUnavailable, "request timed out"},
		{"store corruption is opaque", service.ErrCredentialStoreCorruption, http.StatusInternalServerError, msgInternalServerError},
		{"signing failure is opaque", service.ErrSigningFailure, http.StatusInternalServerError, msgInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, msgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}
