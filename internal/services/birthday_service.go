package services

import (
	"context"

	"github.com/nitgconnect/backend/internal/store"
)

const birthdayListLimit = 200

// BirthdayService is a read-only view over user profiles that carry a birth date.
type BirthdayService struct {
	resource
}

func NewBirthdayService(st store.Store) *BirthdayService {
	return &BirthdayService{
		resource: newResource(st, CollectionUsers, store.Query{
			OrderBy:   "birthDate",
			Direction: store.Asc,
			Limit:     birthdayListLimit,
			NotNull:   "birthDate",
		}),
	}
}

// List returns profiles with a non-empty birthDate, ordered by it.
func (s *BirthdayService) List(ctx context.Context) ([]store.Document, error) {
	docs, err := s.list(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]store.Document, 0, len(docs))
	for _, doc := range docs {
		if bd, ok := doc["birthDate"].(string); ok && bd != "" {
			out = append(out, doc)
		}
	}
	return out, nil
}
