package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces access-token authentication.
//
// The token is taken from the "Authorization: Bearer <token>" header or,
// when the header is absent, from the access token cookie. It is verified as
// an access token via [service.AuthService.ParseAccessToken]; a refresh token
// is rejected. On success the user id is stored in the request context and
// added to the request-scoped logger.
//
// Every rejection is answered with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := accessTokenFromRequest(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.ParseAccessToken(ctx, token)
		if err != nil {
			writeError(w, r, err)
			return
		}
		userID, err := claims.UserID()
		if err != nil {
			writeError(w, r, ErrNoUserInContext)
			return
		}

		ctx = utils.WithUserID(ctx, userID)
		ctx = logger.FromRequest(r).WithUserID(userID).WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func accessTokenFromRequest(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		token, err := utils.ParseBearerToken(header)
		if err != nil {
			return "", ErrMalformedAuthorizationHeader
		}
		return token, nil
	}

	if token := cookieValue(r, accessTokenCookie); token != "" {
		return token, nil
	}

	return "", ErrMissingAccessToken
}
