package models

import (
	"sort"
	"strings"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Errors map[string]string `json:"errors,omitempty"`
	Stack  string            `json:"stack,omitempty"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewValidationErrorResponse joins the field errors into one readable message and keeps the
// per-field map alongside it.
func NewValidationErrorResponse(errors map[string]string) ErrorResponse {
	keys := make([]string, 0, len(errors))
	for k := range errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, errors[k])
	}
	return ErrorResponse{
		Error:  strings.Join(msgs, "; "),
		Errors: errors,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ImageUploadResponse is returned after successful image upload
type ImageUploadResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}
