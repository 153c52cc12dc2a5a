package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nitgconnect/backend/internal/models"
	"github.com/nitgconnect/backend/internal/services"
)

type NoticeHandler struct {
	service *services.NoticeService
}

func NewNoticeHandler(service *services.NoticeService) *NoticeHandler {
	return &NoticeHandler{service: service}
}

func (h *NoticeHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	notices, err := h.service.List(ctx)
	if err != nil {
		writeServiceError(w, "ListNotices", "", err)
		return
	}
	writeJSON(w, http.StatusOK, notices)
}

func (h *NoticeHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	notice, err := h.service.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, "GetNotice", "Notice not found", err)
		return
	}
	writeJSON(w, http.StatusOK, notice)
}

func (h *NoticeHandler) Create(w http.ResponseWriter, r *http.Request) {
	logCaller("CreateNotice", r)

	var req models.CreateNoticeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if writeValidation(w, "CreateNotice", req.Validate()) {
		return
	}

	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	notice, err := h.service.Create(ctx, &req)
	if err != nil {
		writeServiceError(w, "CreateNotice", "", err)
		return
	}
	writeJSON(w, http.StatusCreated, notice)
}

func (h *NoticeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateNoticeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if writeValidation(w, "UpdateNotice", req.Validate()) {
		return
	}

	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	notice, err := h.service.Update(ctx, chi.URLParam(r, "id"), &req)
	if err != nil {
		writeServiceError(w, "UpdateNotice", "Notice not found", err)
		return
	}
	writeJSON(w, http.StatusOK, notice)
}

func (h *NoticeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	if err := h.service.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, "DeleteNotice", "", err)
		return
	}
	writeDeleted(w, "Notice")
}
