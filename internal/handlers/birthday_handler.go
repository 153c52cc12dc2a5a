package handlers

import (
	"net/http"

	"github.com/nitgconnect/backend/internal/services"
)

type BirthdayHandler struct {
	service *services.BirthdayService
}

func NewBirthdayHandler(service *services.BirthdayService) *BirthdayHandler {
	return &BirthdayHandler{service: service}
}

func (h *BirthdayHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	users, err := h.service.List(ctx)
	if err != nil {
		writeServiceError(w, "ListBirthdays", "", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}
