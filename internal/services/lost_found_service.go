package services

import (
	"context"

	"github.com/nitgconnect/backend/internal/models"
	"github.com/nitgconnect/backend/internal/store"
)

type LostFoundService struct {
	resource
}

func NewLostFoundService(st store.Store) *LostFoundService {
	return &LostFoundService{
		resource: newResource(st, CollectionLostFound, store.Query{OrderBy: "createdAt", Direction: store.Desc}),
	}
}

// List returns every item, newest first.
func (s *LostFoundService) List(ctx context.Context) ([]store.Document, error) {
	return s.list(ctx)
}

func (s *LostFoundService) GetByID(ctx context.Context, id string) (store.Document, error) {
	return s.get(ctx, id)
}

// Create expects a request that already passed Validate.
func (s *LostFoundService) Create(ctx context.Context, req *models.CreateLostFoundRequest) (store.Document, error) {
	return s.create(ctx, map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
		"location":    req.Location,
		"type":        req.Type,
		"image":       nonEmptyOrNil(req.Image.Set, req.Image.Null, req.Image.Value),
	})
}

// Update applies the fields present in req. An empty request only bumps updatedAt.
func (s *LostFoundService) Update(ctx context.Context, id string, req *models.UpdateLostFoundRequest) (store.Document, error) {
	return s.update(ctx, id, req.Fields())
}

func (s *LostFoundService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}
