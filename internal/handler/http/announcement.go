package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendo-app/attendo-backend-go/internal/domain/announcement"
	"github.com/attendo-app/attendo-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AnnouncementHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AnnouncementHandlerImpl struct {
	announcementService announcement.AnnouncementService
}

func NewAnnouncementHandler(announcementService announcement.AnnouncementService) AnnouncementHandler {
	return &AnnouncementHandlerImpl{announcementService: announcementService}
}

// List implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcementService.GetAll(r.Context())
	if err != nil {
		slog.Error("Announcement list error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, announcements)
}

// Create implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq announcement.AnnouncementRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.announcementService.Create(r.Context(), &createReq)
	if err != nil {
		slog.Error("Announcement create error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Announcement created", created)
}

// Update implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq announcement.AnnouncementRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.announcementService.Update(r.Context(), &updateReq)
	if err != nil {
		slog.Error("Announcement update error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Announcement updated", updated)
}

// Delete implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.announcementService.Delete(r.Context(), id); err != nil {
		slog.Error("Announcement delete error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Announcement deleted", nil)
}
