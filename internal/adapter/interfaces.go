// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the go-auth-keeper HTTP API.
//
// The primary abstraction is [ServerAdapter], which keeps the current token
// pair and attaches it to requests so callers deal only with users and
// sessions. Error values defined in errors.go are mapped from HTTP status
// codes by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the auth server.
type ServerAdapter interface {
	// SetTokens replaces the token pair held by the adapter.
	SetTokens(pair models.TokenPair)

	// Tokens returns the token pair currently held by the adapter.
	Tokens() models.TokenPair

	// Register creates an account. It does not log the user in.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// Login authenticates the user and stores the issued token pair.
	Login(ctx context.Context, request models.LoginRequest) (models.LoginResult, error)

	// Refresh exchanges the held refresh token for a new pair and stores it.
	// Returns [ErrNoSession] when no refresh token is held.
	Refresh(ctx context.Context) (models.TokenPair, error)

	// Logout ends the session on the server and forgets the tokens.
	Logout(ctx context.Context) error

	// CurrentUser returns the logged-in user. An expired access token is
	// refreshed once transparently.
	CurrentUser(ctx context.Context) (models.User, error)

	// ServerVersion returns the version string reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
