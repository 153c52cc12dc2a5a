package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/nitgconnect/backend/internal/models"
	"github.com/nitgconnect/backend/internal/store"
)

const userListLimit = 200

// UserService manages profiles in the users collection. Profiles are keyed by the identity
// provider uid rather than a generated id.
type UserService struct {
	resource
}

func NewUserService(st store.Store) *UserService {
	return &UserService{
		resource: newResource(st, CollectionUsers, store.Query{OrderBy: "name", Direction: store.Asc, Limit: userListLimit}),
	}
}

// List returns up to 200 profiles ordered by name.
func (s *UserService) List(ctx context.Context) ([]store.Document, error) {
	return s.list(ctx)
}

func (s *UserService) GetByID(ctx context.Context, uid string) (store.Document, error) {
	return s.get(ctx, uid)
}

// Update merges the allow-listed profile fields into the profile, creating it when missing.
func (s *UserService) Update(ctx context.Context, uid string, req *models.UpdateProfileRequest) (store.Document, error) {
	fields := req.Fields()
	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}
	fields["updatedAt"] = store.ServerTimestamp

	if err := s.col.Set(ctx, uid, fields, true); err != nil {
		return nil, fmt.Errorf("update profile %s: %w", uid, err)
	}
	return s.get(ctx, uid)
}

func (s *UserService) Delete(ctx context.Context, uid string) error {
	return s.delete(ctx, uid)
}

// CreateProfile writes a fresh profile for a newly registered account. Only the supplied
// fields are stored next to email and createdAt.
func (s *UserService) CreateProfile(ctx context.Context, uid, email string, supplied map[string]interface{}) error {
	fields := make(map[string]interface{}, len(supplied)+2)
	for k, v := range supplied {
		fields[k] = v
	}
	fields["email"] = email
	fields["createdAt"] = store.ServerTimestamp

	if err := s.col.Set(ctx, uid, fields, false); err != nil {
		return fmt.Errorf("create profile %s: %w", uid, err)
	}
	return nil
}

// Profile returns the stored profile for uid, or (nil, nil) when there is none.
func (s *UserService) Profile(ctx context.Context, uid string) (store.Document, error) {
	doc, err := s.get(ctx, uid)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return doc, err
}
