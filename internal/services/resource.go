package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/nitgconnect/backend/internal/store"
)

var (
	// ErrNotFound is returned for reads and updates of documents that do not exist.
	ErrNotFound = store.ErrNotFound
	// ErrNoFieldsToUpdate is returned when an update carries no allow-listed field.
	ErrNoFieldsToUpdate = errors.New("no fields provided to update")
)

// Collection names.
const (
	CollectionLostFound   = "lostFound"
	CollectionNotices     = "notices"
	CollectionMarketplace = "marketplaceListings"
	CollectionUsers       = "users"
	CollectionClubs       = "clubs"
)

// resource is the CRUD shape shared by every collection-backed service.
type resource struct {
	col   store.Collection
	order store.Query
}

func newResource(st store.Store, name string, order store.Query) resource {
	return resource{col: st.Collection(name), order: order}
}

func (r resource) list(ctx context.Context) ([]store.Document, error) {
	docs, err := r.col.List(ctx, r.order)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.col.Name(), err)
	}
	if docs == nil {
		docs = []store.Document{}
	}
	return docs, nil
}

func (r resource) get(ctx context.Context, id string) (store.Document, error) {
	doc, err := r.col.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s/%s: %w", r.col.Name(), id, err)
	}
	return doc, nil
}

// create stamps createdAt with the server clock and returns the stored document.
func (r resource) create(ctx context.Context, fields map[string]interface{}) (store.Document, error) {
	fields["createdAt"] = store.ServerTimestamp
	doc, err := r.col.Add(ctx, fields)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", r.col.Name(), err)
	}
	return doc, nil
}

// update writes the given fields plus updatedAt to an existing document and re-reads it.
func (r resource) update(ctx context.Context, id string, fields map[string]interface{}) (store.Document, error) {
	fields["updatedAt"] = store.ServerTimestamp
	if err := r.col.Update(ctx, id, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update %s/%s: %w", r.col.Name(), id, err)
	}
	return r.get(ctx, id)
}

func (r resource) delete(ctx context.Context, id string) error {
	if err := r.col.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s/%s: %w", r.col.Name(), id, err)
	}
	return nil
}

// nonEmptyOrNil stores missing, null and empty optional strings as null.
func nonEmptyOrNil(set, null bool, value string) interface{} {
	if !set || null || value == "" {
		return nil
	}
	return value
}
