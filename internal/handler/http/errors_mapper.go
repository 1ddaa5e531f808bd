package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

const msgInternalServerError = "internal server error"

// errorStatusTable is ordered from the most specific error to the error kind
// it wraps. An empty message means the error text itself is shown.
var errorStatusTable = []struct {
	target  error
	status  int
	message string
}{
	{service.ErrRefreshTokenReused, http.StatusUnauthorized, "refresh token is expired or used"},
	{service.ErrRefreshTokenMissing, http.StatusUnauthorized, "unauthorized request"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid user credentials"},
	{ErrMissingAccessToken, http.StatusUnauthorized, "unauthorized request"},
	{ErrMalformedAuthorizationHeader, http.StatusUnauthorized, "malformed authorization header"},
	{service.ErrTokenInvalid, http.StatusUnauthorized, "invalid token"},
	{service.ErrUnauthorized, http.StatusUnauthorized, "unauthorized request"},

	{service.ErrUserAlreadyExists, http.StatusConflict, "user with email or username already exists"},
	{service.ErrConflict, http.StatusConflict, "conflict"},
	{service.ErrUserNotFound, http.StatusNotFound, "user does not exist"},
	{service.ErrNotFound, http.StatusNotFound, "not found"},

	{service.ErrValidation, http.StatusBadRequest, ""},
	{ErrInvalidJSON, http.StatusBadRequest, ErrInvalidJSON.Error()},

	{context.DeadlineExceeded, http.StatusServiceUnavailable, "request timed out"},
}

// statusFromError returns the response status and message for err.
// Unknown errors, store corruption and signing failures are all reported as
// an opaque internal server error.
func statusFromError(err error) (int, string) {
	for _, entry := range errorStatusTable {
		if errors.Is(err, entry.target) {
			if entry.message == "" {
				return entry.status, err.Error()
			}
			return entry.status, entry.message
		}
	}
	return http.StatusInternalServerError, msgInternalServerError
}

// writeError logs err and writes the error envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, status, models.NewResponse(status, nil, message))
}
