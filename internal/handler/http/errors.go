// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/service"
)

var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrMissingAccessToken is returned by the auth middleware when the
	// request carries neither an "Authorization" header nor an access token
	// cookie.
	ErrMissingAccessToken = fmt.Errorf("%w: access token is required", service.ErrUnauthorized)

	// ErrMalformedAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrMalformedAuthorizationHeader = fmt.Errorf("%w: malformed `Authorization` header", service.ErrUnauthorized)

	// ErrNoUserInContext is returned when a protected handler runs without
	// the auth middleware having stored a user id.
	ErrNoUserInContext = fmt.Errorf("%w: no authenticated user", service.ErrUnauthorized)
)
