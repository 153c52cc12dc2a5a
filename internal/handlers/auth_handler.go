package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/nitgconnect/backend/internal/identity"
	"github.com/nitgconnect/backend/internal/middleware"
	"github.com/nitgconnect/backend/internal/models"
	"github.com/nitgconnect/backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Validate()) > 0 {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Email and password are required"))
		return
	}

	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	resp, err := h.authService.Login(ctx, &req)
	if err != nil {
		var rejected *identity.RejectedError
		if errors.As(err, &rejected) {
			writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse(rejected.Message))
			return
		}
		log.Printf("[Login] Provider error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse(err.Error()))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Validate()) > 0 {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Email and password are required"))
		return
	}

	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	resp, err := h.authService.Signup(ctx, &req)
	if err != nil {
		var rejected *identity.RejectedError
		if errors.As(err, &rejected) {
			writeJSON(w, http.StatusBadRequest, models.NewErrorResponse(rejected.Message))
			return
		}
		log.Printf("[Signup] Error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse(err.Error()))
		return
	}

	log.Printf("[Signup] Account created: %s", resp.User["uid"])
	writeJSON(w, http.StatusOK, resp)
}

// Verify accepts the token in the body, falling back to the Authorization header.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}

	token := strings.TrimSpace(req.Token)
	if token == "" {
		token = middleware.BearerToken(r)
	}
	if token == "" {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Token is required"))
		return
	}

	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	claims, err := h.authService.Verify(ctx, token)
	if err != nil {
		if !errors.Is(err, identity.ErrInvalidToken) {
			log.Printf("[Verify] Error: %v", err)
		}
		writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Invalid token"))
		return
	}

	writeJSON(w, http.StatusOK, models.VerifyResponse{User: claims})
}
