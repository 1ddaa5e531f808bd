// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeEnvelope(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.NewResponse(status, data, message))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://auth.example.com/ ", want: "https://auth.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/users/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)

		writeEnvelope(w, http.StatusCreated, models.User{UserID: 1, Username: "alice"}, "user registered successfully")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.RegisterRequest{Username: "alice", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UserID)
	assert.Empty(t, a.Tokens().AccessToken)
}

func TestRegister_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"conflict", http.StatusConflict, ErrConflict},
		{"internal", http.StatusInternalServerError, ErrInternalServerError},
		{"unavailable", http.StatusServiceUnavailable, ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				writeEnvelope(w, tt.status, nil, "server says no")
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.RegisterRequest{})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "server says no")
		})
	}
}

func TestLogin_StoresTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/login", r.URL.Path)
		writeEnvelope(w, http.StatusOK, models.LoginResult{
			User:         models.User{UserID: 7, Username: "alice"},
			AccessToken:  "a1",
			RefreshToken: "r1",
		}, "user logged in successfully")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	result, err := a.Login(context.Background(), models.LoginRequest{Identifier: "alice", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.User.UserID)
	assert.Equal(t, models.TokenPair{AccessToken: "a1", RefreshToken: "r1"}, a.Tokens())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, nil, "invalid user credentials")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Identifier: "alice", Password: "bad"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Tokens())
}

func TestRefresh(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		a := newTestAdapter(t, "http://127.0.0.1:1")
		_, err := a.Refresh(context.Background())
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("rotates pair", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req models.RefreshRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "r1", req.RefreshToken)
			writeEnvelope(w, http.StatusOK, models.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, "access token refreshed")
		}))
		defer srv.Close()

		a := newTestAdapter(t, srv.URL)
		a.SetTokens(models.TokenPair{AccessToken: "a1", RefreshToken: "r1"})

		pair, err := a.Refresh(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "r2", pair.RefreshToken)
		assert.Equal(t, pair, a.Tokens())
	})

	t.Run("rejected token drops session", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeEnvelope(w, http.StatusUnauthorized, nil, "refresh token is expired or used")
		}))
		defer srv.Close()

		a := newTestAdapter(t, srv.URL)
		a.SetTokens(models.TokenPair{AccessToken: "a1", RefreshToken: "r1"})

		_, err := a.Refresh(context.Background())
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Empty(t, a.Tokens())
	})
}

func TestCurrentUser_RefreshesOnce(t *testing.T) {
	var refreshes atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/users/current-user":
			if r.Header.Get("Authorization") != "Bearer a2" {
				writeEnvelope(w, http.StatusUnauthorized, nil, "invalid token")
				return
			}
			writeEnvelope(w, http.StatusOK, models.User{UserID: 7, Username: "alice"}, "user fetched successfully")
		case "/api/v1/users/refresh-token":
			refreshes.Add(1)
			writeEnvelope(w, http.StatusOK, models.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, "access token refreshed")
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetTokens(models.TokenPair{AccessToken: "expired", RefreshToken: "r1"})

	user, err := a.CurrentUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, int32(1), refreshes.Load())
}

func TestLogout_ForgetsTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer a1", r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, struct{}{}, "user logged out")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetTokens(models.TokenPair{AccessToken: "a1", RefreshToken: "r1"})

	require.NoError(t, a.Logout(context.Background()))
	assert.Empty(t, a.Tokens())
	assert.ErrorIs(t, a.Logout(context.Background()), ErrNoSession)
}

func TestServerVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.4.0"))
	}))
	defer srv.Close()

	version, err := newTestAdapter(t, srv.URL).ServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", version)
}
