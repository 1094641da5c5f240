package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendo-app/attendo-backend-go/internal/domain/auth"
	"github.com/attendo-app/attendo-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	LoginAdmin(w http.ResponseWriter, r *http.Request)
	RegisterAdmin(w http.ResponseWriter, r *http.Request)
	RequestReset(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

// LoginAdmin implements AuthHandler.
func (a *AuthHandlerImpl) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("LoginAdmin decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokenResp, err := a.authService.LoginAdmin(r.Context(), loginReq)
	if err != nil {
		slog.Error("LoginAdmin service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tokenResp)
}

// RegisterAdmin implements AuthHandler.
func (a *AuthHandlerImpl) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("RegisterAdmin decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := registerReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokenResp, err := a.authService.RegisterAdmin(r.Context(), registerReq)
	if err != nil {
		slog.Error("RegisterAdmin service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Admin account created", tokenResp)
}

// RequestReset implements AuthHandler.
func (a *AuthHandlerImpl) RequestReset(w http.ResponseWriter, r *http.Request) {
	var resetReq auth.RequestResetRequest

	if err := json.NewDecoder(r.Body).Decode(&resetReq); err != nil {
		slog.Error("RequestReset decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := resetReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if _, err := a.authService.RequestReset(r.Context(), resetReq); err != nil {
		slog.Error("RequestReset service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Identical response whether or not the account exists
	response.SuccessWithMessage(w, "Password reset link has been sent", nil)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	me, err := a.authService.Me(r.Context())
	if err != nil {
		slog.Error("Me service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, me)
}
