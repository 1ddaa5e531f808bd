package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/models"
)

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
)

// setTokenCookies stores the token pair in HttpOnly cookies.
func (h *Handler) setTokenCookies(w http.ResponseWriter, pair models.TokenPair) {
	http.SetCookie(w, h.tokenCookie(accessTokenCookie, pair.AccessToken))
	http.SetCookie(w, h.tokenCookie(refreshTokenCookie, pair.RefreshToken))
}

func (h *Handler) clearTokenCookies(w http.ResponseWriter) {
	for _, name := range []string{accessTokenCookie, refreshTokenCookie} {
		c := h.tokenCookie(name, "")
		c.MaxAge = -1
		http.SetCookie(w, c)
	}
}

func (h *Handler) tokenCookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

// cookieValue returns the value of the named cookie or an empty string.
func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
