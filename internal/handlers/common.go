package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/nitgconnect/backend/internal/middleware"
	"github.com/nitgconnect/backend/internal/models"
	"github.com/nitgconnect/backend/internal/services"
)

// DefaultRequestTimeout bounds every store and identity call made by a handler.
const DefaultRequestTimeout = 10 * time.Second

var requestTimeout = DefaultRequestTimeout

// SetRequestTimeout overrides DefaultRequestTimeout. Non-positive values are ignored.
func SetRequestTimeout(d time.Duration) {
	if d > 0 {
		requestTimeout = d
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func contextWithTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, requestTimeout)
}

// decodeJSON reads the request body into dst and answers 400 itself when that fails.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return false
	}
	return true
}

// logCaller records who made a write when the token gate is enabled.
func logCaller(op string, r *http.Request) {
	if uid := middleware.GetUserID(r.Context()); uid != "" {
		log.Printf("[%s] User: %s (%s)", op, uid, middleware.GetUserEmail(r.Context()))
	}
}

func writeValidation(w http.ResponseWriter, op string, errs map[string]string) bool {
	if len(errs) == 0 {
		return false
	}
	log.Printf("[%s] Validation errors: %v", op, errs)
	writeJSON(w, http.StatusBadRequest, models.NewValidationErrorResponse(errs))
	return true
}

// writeServiceError maps service errors onto status codes. Anything unrecognised is a 500
// carrying the error text.
func writeServiceError(w http.ResponseWriter, op, notFound string, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		writeJSON(w, http.StatusNotFound, models.NewErrorResponse(notFound))
	case errors.Is(err, services.ErrNoFieldsToUpdate):
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("No valid fields provided for update"))
	default:
		log.Printf("[%s] Service error: %v", op, err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse(err.Error()))
	}
}

func writeDeleted(w http.ResponseWriter, resource string) {
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: resource + " deleted successfully"})
}
