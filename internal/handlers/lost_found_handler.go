package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nitgconnect/backend/internal/models"
	"github.com/nitgconnect/backend/internal/services"
)

type LostFoundHandler struct {
	service *services.LostFoundService
}

func NewLostFoundHandler(service *services.LostFoundService) *LostFoundHandler {
	return &LostFoundHandler{service: service}
}

func (h *LostFoundHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	items, err := h.service.List(ctx)
	if err != nil {
		writeServiceError(w, "ListLostFound", "", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *LostFoundHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	item, err := h.service.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, "GetLostFound", "Item not found", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *LostFoundHandler) Create(w http.ResponseWriter, r *http.Request) {
	logCaller("CreateLostFound", r)

	var req models.CreateLostFoundRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if writeValidation(w, "CreateLostFound", req.Validate()) {
		return
	}

	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	item, err := h.service.Create(ctx, &req)
	if err != nil {
		writeServiceError(w, "CreateLostFound", "", err)
		return
	}

	log.Printf("[CreateLostFound] Item created: %s", item.ID())
	writeJSON(w, http.StatusCreated, item)
}

func (h *LostFoundHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateLostFoundRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if writeValidation(w, "UpdateLostFound", req.Validate()) {
		return
	}

	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	item, err := h.service.Update(ctx, chi.URLParam(r, "id"), &req)
	if err != nil {
		writeServiceError(w, "UpdateLostFound", "Item not found", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *LostFoundHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	if err := h.service.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, "DeleteLostFound", "", err)
		return
	}
	writeDeleted(w, "Item")
}
