package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nitgconnect/backend/internal/models"
	"github.com/nitgconnect/backend/internal/services"
)

type ImageHandler struct {
	imageService *services.ImageService
	maxSizeMB    int64
}

func NewImageHandler(imageService *services.ImageService, maxSizeMB int64) *ImageHandler {
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	return &ImageHandler{
		imageService: imageService,
		maxSizeMB:    maxSizeMB,
	}
}

func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	logCaller("UploadImage", r)

	// Limit request body size
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSizeMB*1024*1024)

	if err := r.ParseMultipartForm(h.maxSizeMB * 1024 * 1024); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("File too large or invalid form data"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("No image file provided"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !services.IsValidImageType(contentType) {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid image type. Allowed: JPEG, PNG, GIF, WebP"))
		return
	}

	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	response, err := h.imageService.Upload(ctx, header.Filename, contentType, file)
	if err != nil {
		log.Printf("[UploadImage] Error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to upload image"))
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	err := h.imageService.Delete(ctx, chi.URLParam(r, "imageId"))
	if err != nil {
		if errors.Is(err, services.ErrImageNotFound) {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Image not found"))
			return
		}
		log.Printf("[DeleteImage] Error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to delete image"))
		return
	}

	writeDeleted(w, "Image")
}
