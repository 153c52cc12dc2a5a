package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/nitgconnect/backend/internal/models"
)

var (
	ErrImageNotFound = errors.New("image not found")
	ErrInvalidImage  = errors.New("invalid image file")
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// IsValidImageType reports whether contentType is one of the accepted image types.
func IsValidImageType(contentType string) bool {
	_, ok := imageExtensions[contentType]
	return ok
}

// ImageStore persists image bytes under a name and returns the public URL.
type ImageStore interface {
	Put(ctx context.Context, name, contentType string, r io.Reader) (string, error)
	// Remove deletes name, returning ErrImageNotFound when it does not exist.
	Remove(ctx context.Context, name string) error
}

// ImageService names uploads and hands them to an ImageStore. The image id is the stored
// name, so deletes need no lookup table.
type ImageService struct {
	store ImageStore
}

func NewImageService(store ImageStore) *ImageService {
	return &ImageService{store: store}
}

func (s *ImageService) Upload(ctx context.Context, filename, contentType string, file io.Reader) (*models.ImageUploadResponse, error) {
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, ErrInvalidImage
	}
	if fe := strings.ToLower(filepath.Ext(filename)); fe != "" && isKnownExtension(fe) {
		ext = fe
	}

	name := uuid.New().String() + ext
	url, err := s.store.Put(ctx, name, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to save image: %w", err)
	}

	return &models.ImageUploadResponse{
		ID:       name,
		URL:      url,
		Filename: name,
	}, nil
}

func (s *ImageService) Delete(ctx context.Context, imageID string) error {
	if !isImageName(imageID) {
		return ErrImageNotFound
	}
	return s.store.Remove(ctx, imageID)
}

// isImageName accepts only names this service generated: a uuid followed by a known extension.
func isImageName(name string) bool {
	ext := filepath.Ext(name)
	if !isKnownExtension(ext) {
		return false
	}
	_, err := uuid.Parse(strings.TrimSuffix(name, ext))
	return err == nil
}

func isKnownExtension(ext string) bool {
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return true
	}
	return false
}
