package client

import (
	"context"
	"net/http"
	"net/url"
)

// Resource is a collection endpoint such as /lost-found. Not every server resource supports
// every verb; the server answers unsupported ones with an APIError.
type Resource struct {
	c    *Client
	path string
}

func (r *Resource) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

func (r *Resource) List(ctx context.Context) ([]Document, error) {
	var out []Document
	if err := r.c.do(ctx, http.MethodGet, r.path, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Document{}
	}
	return out, nil
}

func (r *Resource) Get(ctx context.Context, id string) (Document, error) {
	var out Document
	if err := r.c.do(ctx, http.MethodGet, r.itemPath(id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create posts body, which is usually a map or a struct with json tags.
func (r *Resource) Create(ctx context.Context, body interface{}) (Document, error) {
	var out Document
	if err := r.c.do(ctx, http.MethodPost, r.path, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resource) Update(ctx context.Context, id string, body interface{}) (Document, error) {
	var out Document
	if err := r.c.do(ctx, http.MethodPut, r.itemPath(id), body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete returns the server's confirmation message.
func (r *Resource) Delete(ctx context.Context, id string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := r.c.do(ctx, http.MethodDelete, r.itemPath(id), nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
