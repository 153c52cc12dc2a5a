package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/nitgconnect/backend/internal/models"
	"github.com/nitgconnect/backend/internal/store"
)

// ErrListingNotFound is the marketplace's own not-found error. It still matches ErrNotFound.
var ErrListingNotFound = fmt.Errorf("listing not found: %w", ErrNotFound)

type MarketplaceService struct {
	resource
}

func NewMarketplaceService(st store.Store) *MarketplaceService {
	return &MarketplaceService{
		resource: newResource(st, CollectionMarketplace, store.Query{OrderBy: "createdAt", Direction: store.Desc}),
	}
}

func (s *MarketplaceService) List(ctx context.Context) ([]store.Document, error) {
	return s.list(ctx)
}

func (s *MarketplaceService) GetByID(ctx context.Context, id string) (store.Document, error) {
	return s.get(ctx, id)
}

func (s *MarketplaceService) Create(ctx context.Context, req *models.CreateListingRequest) (store.Document, error) {
	return s.create(ctx, map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
		"price":       req.Price.Value,
		"category":    req.Category,
		"seller":      req.SellerOrDefault(),
		"contact":     req.ContactOrNil(),
		"image":       req.Image.OrNil(),
	})
}

// Update rejects requests without any recognised field and reports a missing listing as
// ErrListingNotFound.
func (s *MarketplaceService) Update(ctx context.Context, id string, req *models.UpdateListingRequest) (store.Document, error) {
	fields := req.Fields()
	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	doc, err := s.update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *MarketplaceService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}
