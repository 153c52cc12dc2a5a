package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nitgconnect/backend/internal/models"
	"github.com/nitgconnect/backend/internal/services"
)

type MarketplaceHandler struct {
	service *services.MarketplaceService
}

func NewMarketplaceHandler(service *services.MarketplaceService) *MarketplaceHandler {
	return &MarketplaceHandler{service: service}
}

func (h *MarketplaceHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	listings, err := h.service.List(ctx)
	if err != nil {
		writeServiceError(w, "ListListings", "", err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

func (h *MarketplaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	listing, err := h.service.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, "GetListing", "Listing not found", err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

func (h *MarketplaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	logCaller("CreateListing", r)

	var req models.CreateListingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if writeValidation(w, "CreateListing", req.Validate()) {
		return
	}

	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	listing, err := h.service.Create(ctx, &req)
	if err != nil {
		writeServiceError(w, "CreateListing", "", err)
		return
	}

	log.Printf("[CreateListing] Listing created: %s", listing.ID())
	writeJSON(w, http.StatusCreated, listing)
}

func (h *MarketplaceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateListingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if writeValidation(w, "UpdateListing", req.Validate()) {
		return
	}

	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	listing, err := h.service.Update(ctx, chi.URLParam(r, "id"), &req)
	if err != nil {
		if errors.Is(err, services.ErrListingNotFound) {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Listing not found"))
			return
		}
		writeServiceError(w, "UpdateListing", "Listing not found", err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

func (h *MarketplaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	if err := h.service.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, "DeleteListing", "", err)
		return
	}
	writeDeleted(w, "Listing")
}
