package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nitgconnect/backend/internal/models"
	"github.com/nitgconnect/backend/internal/services"
)

type ClubHandler struct {
	service *services.ClubService
}

func NewClubHandler(service *services.ClubService) *ClubHandler {
	return &ClubHandler{service: service}
}

func (h *ClubHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	clubs, err := h.service.List(ctx)
	if err != nil {
		writeServiceError(w, "ListClubs", "", err)
		return
	}
	writeJSON(w, http.StatusOK, clubs)
}

func (h *ClubHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	club, err := h.service.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, "GetClub", "Club not found", err)
		return
	}
	writeJSON(w, http.StatusOK, club)
}

func (h *ClubHandler) Create(w http.ResponseWriter, r *http.Request) {
	logCaller("CreateClub", r)

	var req models.CreateClubRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if writeValidation(w, "CreateClub", req.Validate()) {
		return
	}

	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	club, err := h.service.Create(ctx, &req)
	if err != nil {
		writeServiceError(w, "CreateClub", "", err)
		return
	}
	writeJSON(w, http.StatusCreated, club)
}

func (h *ClubHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	if err := h.service.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, "DeleteClub", "", err)
		return
	}
	writeDeleted(w, "Club")
}
