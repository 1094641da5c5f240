package http

import (
	"log/slog"
	"net/http"

	"github.com/attendo-app/attendo-backend-go/internal/domain/auth"
	"github.com/attendo-app/attendo-backend-go/internal/domain/preference"
	"github.com/attendo-app/attendo-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type PreferenceHandler interface {
	GetTheme(w http.ResponseWriter, r *http.Request)
	ToggleTheme(w http.ResponseWriter, r *http.Request)
}

type PreferenceHandlerImpl struct {
	preferenceService preference.PreferenceService
}

func NewPreferenceHandler(preferenceService preference.PreferenceService) PreferenceHandler {
	return &PreferenceHandlerImpl{preferenceService: preferenceService}
}

func userIDFromContext(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}

// GetTheme implements PreferenceHandler.
func (h *PreferenceHandlerImpl) GetTheme(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	theme, err := h.preferenceService.GetTheme(r.Context(), userID)
	if err != nil {
		slog.Error("Theme get error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, theme)
}

// ToggleTheme implements PreferenceHandler.
func (h *PreferenceHandlerImpl) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	theme, err := h.preferenceService.ToggleTheme(r.Context(), userID)
	if err != nil {
		slog.Error("Theme toggle error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Theme updated", theme)
}
