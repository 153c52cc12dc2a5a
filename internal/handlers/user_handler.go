package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nitgconnect/backend/internal/models"
	"github.com/nitgconnect/backend/internal/services"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	users, err := h.service.List(ctx)
	if err != nil {
		writeServiceError(w, "ListUsers", "", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	user, err := h.service.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, "GetUser", "User not found", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Update merges profile fields. Keys outside the profile allow-list are ignored.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	logCaller("UpdateUser", r)

	var req models.UpdateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	user, err := h.service.Update(ctx, chi.URLParam(r, "id"), &req)
	if err != nil {
		writeServiceError(w, "UpdateUser", "User not found", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	if err := h.service.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, "DeleteUser", "", err)
		return
	}
	writeDeleted(w, "User")
}
