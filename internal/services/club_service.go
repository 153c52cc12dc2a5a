package services

import (
	"context"

	"github.com/nitgconnect/backend/internal/models"
	"github.com/nitgconnect/backend/internal/store"
)

// ClubService has no update path; clubs are created once and deleted.
type ClubService struct {
	resource
}

func NewClubService(st store.Store) *ClubService {
	return &ClubService{
		resource: newResource(st, CollectionClubs, store.Query{OrderBy: "name", Direction: store.Asc}),
	}
}

func (s *ClubService) List(ctx context.Context) ([]store.Document, error) {
	return s.list(ctx)
}

func (s *ClubService) GetByID(ctx context.Context, id string) (store.Document, error) {
	return s.get(ctx, id)
}

func (s *ClubService) Create(ctx context.Context, req *models.CreateClubRequest) (store.Document, error) {
	return s.create(ctx, req.Fields())
}

func (s *ClubService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}
