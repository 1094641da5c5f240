package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendo-app/attendo-backend-go/internal/domain/provisioning"
	"github.com/attendo-app/attendo-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ProvisioningHandler interface {
	ListQRCodes(w http.ResponseWriter, r *http.Request)
	GenerateQRCode(w http.ResponseWriter, r *http.Request)
	DeleteQRCode(w http.ResponseWriter, r *http.Request)
	ListWifiConfigs(w http.ResponseWriter, r *http.Request)
	AddWifiConfig(w http.ResponseWriter, r *http.Request)
	DeleteWifiConfig(w http.ResponseWriter, r *http.Request)
}

type ProvisioningHandlerImpl struct {
	provisioningService provisioning.ProvisioningService
}

func NewProvisioningHandler(provisioningService provisioning.ProvisioningService) ProvisioningHandler {
	return &ProvisioningHandlerImpl{provisioningService: provisioningService}
}

// ListQRCodes implements ProvisioningHandler.
func (h *ProvisioningHandlerImpl) ListQRCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.provisioningService.GetAllQRCodes(r.Context())
	if err != nil {
		slog.Error("QR code list error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, codes)
}

// GenerateQRCode implements ProvisioningHandler.
func (h *ProvisioningHandlerImpl) GenerateQRCode(w http.ResponseWriter, r *http.Request) {
	var generateReq provisioning.GenerateQRRequest

	if err := json.NewDecoder(r.Body).Decode(&generateReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.provisioningService.GenerateQRCode(r.Context(), &generateReq)
	if err != nil {
		slog.Error("QR code generate error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "QR code generated", created)
}

// DeleteQRCode implements ProvisioningHandler.
func (h *ProvisioningHandlerImpl) DeleteQRCode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.provisioningService.DeleteQRCode(r.Context(), id); err != nil {
		slog.Error("QR code delete error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "QR code deleted", nil)
}

// ListWifiConfigs implements ProvisioningHandler.
func (h *ProvisioningHandlerImpl) ListWifiConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := h.provisioningService.GetAllWifiConfigs(r.Context())
	if err != nil {
		slog.Error("Wifi config list error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, configs)
}

// AddWifiConfig implements ProvisioningHandler.
func (h *ProvisioningHandlerImpl) AddWifiConfig(w http.ResponseWriter, r *http.Request) {
	var addReq provisioning.AddWifiRequest

	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.provisioningService.AddWifiConfig(r.Context(), &addReq)
	if err != nil {
		slog.Error("Wifi config add error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Wi-Fi config added", created)
}

// DeleteWifiConfig implements ProvisioningHandler.
// The id arrives in the body, matching the client the endpoint serves.
func (h *ProvisioningHandlerImpl) DeleteWifiConfig(w http.ResponseWriter, r *http.Request) {
	var deleteReq struct {
		ID string `json:"id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&deleteReq); err != nil || deleteReq.ID == "" {
		response.BadRequest(w, "id is required", nil)
		return
	}

	if err := h.provisioningService.DeleteWifiConfig(r.Context(), deleteReq.ID); err != nil {
		slog.Error("Wifi config delete error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Wi-Fi config deleted", nil)
}
