package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// maxBodySize bounds every JSON request body.
const maxBodySize = 1 << 20

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var request models.RegisterRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, models.NewResponse(http.StatusCreated, user, "user registered successfully"))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var request models.LoginRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", result.User.UserID).Msg("user successfully logged in")

	h.setTokenCookies(w, result.Pair())
	utils.WriteJSON(w, http.StatusOK, models.NewResponse(http.StatusOK, result, "user logged in successfully"))
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), userID); err != nil {
		writeError(w, r, err)
		return
	}

	h.clearTokenCookies(w)
	utils.WriteJSON(w, http.StatusOK, models.NewResponse(http.StatusOK, struct{}{}, "user logged out"))
}

// refreshToken reads the refresh token from the cookie and falls back to the
// JSON body, which may be empty.
func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	token := cookieValue(r, refreshTokenCookie)
	if token == "" {
		var request models.RefreshRequest
		if err := decodeJSON(r, &request); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, r, err)
			return
		}
		token = request.RefreshToken
	}

	pair, err := h.services.AuthService.Refresh(r.Context(), token)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setTokenCookies(w, pair)
	utils.WriteJSON(w, http.StatusOK, models.NewResponse(http.StatusOK, pair, "access token refreshed"))
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	user, err := h.services.AuthService.CurrentUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, models.NewResponse(http.StatusOK, user, "user fetched successfully"))
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
