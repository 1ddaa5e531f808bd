package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

func registered(subject string) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{Subject: subject}
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		modify     []func(r *http.Request)
		parse      string
		claims     *models.Claims
		parseErr   error
		wantStatus int
		wantUserID int64
	}{
		{
			name:       "no credentials",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			modify:     []func(r *http.Request){func(r *http.Request) { r.Header.Set("Authorization", "Token abc") }},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "bearer header",
			modify:     []func(r *http.Request){withBearer("good")},
			parse:      "good",
			claims:     &models.Claims{Kind: models.AccessToken, RegisteredClaims: registered("42")},
			wantStatus: http.StatusOK,
			wantUserID: 42,
		},
		{
			name:       "cookie",
			modify:     []func(r *http.Request){withCookie(accessTokenCookie, "good")},
			parse:      "good",
			claims:     &models.Claims{Kind: models.AccessToken, RegisteredClaims: registered("42")},
			wantStatus: http.StatusOK,
			wantUserID: 42,
		},
		{
			name:       "header wins over cookie",
			modify:     []func(r *http.Request){withBearer("header"), withCookie(accessTokenCookie, "cookie")},
			parse:      "header",
			claims:     &models.Claims{Kind: models.AccessToken, RegisteredClaims: registered("1")},
			wantStatus: http.StatusOK,
			wantUserID: 1,
		},
		{
			name:       "invalid token",
			modify:     []func(r *http.Request){withBearer("bad")},
			parse:      "bad",
			parseErr:   service.ErrTokenInvalid,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "claims without subject",
			modify:     []func(r *http.Request){withBearer("odd")},
			parse:      "odd",
			claims:     &models.Claims{Kind: models.AccessToken},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, auth := newMockedHandler(t)
			if tt.parse != "" {
				auth.EXPECT().ParseAccessToken(gomock.Any(), tt.parse).Return(tt.claims, tt.parseErr)
			}

			var gotUserID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			for _, m := range tt.modify {
				m(req)
			}
			rec := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUserID, gotUserID)
		})
	}
}
