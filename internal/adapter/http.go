package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// envelope mirrors the JSON body written by the server for every API call.
type envelope[T any] struct {
	StatusCode int    `json:"statusCode"`
	Data       T      `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu     sync.RWMutex
	tokens models.TokenPair

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. Tokens travel in headers and bodies only, so the cookie jar is
// disabled.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	client.SetError(&envelope[struct{}]{})

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetTokens(pair models.TokenPair) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tokens = pair
}

func (h *httpServerAdapter) Tokens() models.TokenPair {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.tokens
}

// Register implements [ServerAdapter]. It POSTs the request to
// POST /api/v1/users/register.
func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	var result envelope[models.User]

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&result).
		Post("/api/v1/users/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.Data, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/v1/users/login and keeps the issued pair.
func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.LoginResult, error) {
	var result envelope[models.LoginResult]

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&result).
		Post("/api/v1/users/login")
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}

	h.SetTokens(result.Data.Pair())
	h.logger.Debug().Int64("user_id", result.Data.User.UserID).Msg("logged in")
	return result.Data, nil
}

// Refresh implements [ServerAdapter]. The refresh token is sent in the body
// of POST /api/v1/users/refresh-token. A rejected token drops the held pair.
func (h *httpServerAdapter) Refresh(ctx context.Context) (models.TokenPair, error) {
	refreshToken := h.Tokens().RefreshToken
	if refreshToken == "" {
		return models.TokenPair{}, ErrNoSession
	}

	var result envelope[models.TokenPair]
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.RefreshRequest{RefreshToken: refreshToken}).
		SetResult(&result).
		Post("/api/v1/users/refresh-token")
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			h.SetTokens(models.TokenPair{})
		}
		return models.TokenPair{}, err
	}

	h.SetTokens(result.Data)
	return result.Data, nil
}

// Logout implements [ServerAdapter]. The held tokens are forgotten even when
// the server call fails.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	accessToken := h.Tokens().AccessToken
	if accessToken == "" {
		return ErrNoSession
	}
	defer h.SetTokens(models.TokenPair{})

	resp, err := h.client.AuthorizedR(accessToken).
		SetContext(ctx).
		Post("/api/v1/users/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// CurrentUser implements [ServerAdapter]. It GETs
// /api/v1/users/current-user and retries once after a refresh when the access
// token is rejected.
func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.User, error) {
	user, err := h.currentUser(ctx)
	if !errors.Is(err, ErrUnauthorized) || h.Tokens().RefreshToken == "" {
		return user, err
	}

	h.logger.Debug().Msg("access token rejected, refreshing")
	if _, refreshErr := h.Refresh(ctx); refreshErr != nil {
		return models.User{}, refreshErr
	}
	return h.currentUser(ctx)
}

func (h *httpServerAdapter) currentUser(ctx context.Context) (models.User, error) {
	accessToken := h.Tokens().AccessToken
	if accessToken == "" {
		return models.User{}, ErrNoSession
	}

	var result envelope[models.User]
	resp, err := h.client.AuthorizedR(accessToken).
		SetContext(ctx).
		SetResult(&result).
		Get("/api/v1/users/current-user")
	if err != nil {
		return models.User{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.Data, nil
}

// ServerVersion implements [ServerAdapter].
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
