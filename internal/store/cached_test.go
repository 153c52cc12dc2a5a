package store

import (
	"context"
	"testing"
	"time"

	"github.com/nitgconnect/backend/internal/cache"
)

type countingStore struct {
	Store
	lists int
}

func (s *countingStore) Collection(name string) Collection {
	return &countingCollection{Collection: s.Store.Collection(name), store: s}
}

type countingCollection struct {
	Collection
	store *countingStore
}

func (c *countingCollection) List(ctx context.Context, q Query) ([]Document, error) {
	c.store.lists++
	return c.Collection.List(ctx, q)
}

func TestCachedStoreServesRepeatedLists(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{Store: NewMemoryStore()}
	st := NewCachedStore(inner, cache.NewMemory(), time.Minute)
	col := st.Collection("clubs")

	col.Add(ctx, map[string]interface{}{"name": "Robotics"})

	q := Query{OrderBy: "name"}
	for i := 0; i < 3; i++ {
		docs, err := col.List(ctx, q)
		if err != nil {
			t.Fatal(err)
		}
		if len(docs) != 1 || docs[0]["name"] != "Robotics" {
			t.Fatalf("unexpected docs: %#v", docs)
		}
	}
	if inner.lists != 1 {
		t.Fatalf("expected 1 backend list, got %d", inner.lists)
	}
}

func TestCachedStoreInvalidatesOnWrite(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{Store: NewMemoryStore()}
	st := NewCachedStore(inner, cache.NewMemory(), time.Minute)
	col := st.Collection("clubs")
	q := Query{OrderBy: "name"}

	doc, _ := col.Add(ctx, map[string]interface{}{"name": "Drama"})
	col.List(ctx, q)

	col.Add(ctx, map[string]interface{}{"name": "Art"})
	docs, _ := col.List(ctx, q)
	if len(docs) != 2 || docs[0]["name"] != "Art" {
		t.Fatalf("stale list after Add: %#v", docs)
	}

	col.Delete(ctx, doc.ID())
	docs, _ = col.List(ctx, q)
	if len(docs) != 1 {
		t.Fatalf("stale list after Delete: %#v", docs)
	}

	if inner.lists != 3 {
		t.Fatalf("expected 3 backend lists, got %d", inner.lists)
	}
}

func TestCachedStoreKeepsCollectionsSeparate(t *testing.T) {
	ctx := context.Background()
	st := NewCachedStore(NewMemoryStore(), cache.NewMemory(), time.Minute)

	st.Collection("clubs").Add(ctx, map[string]interface{}{"name": "Quiz"})
	st.Collection("notices").List(ctx, Query{})
	st.Collection("notices").Add(ctx, map[string]interface{}{"title": "Holiday"})

	docs, _ := st.Collection("notices").List(ctx, Query{})
	if len(docs) != 1 {
		t.Fatalf("expected 1 notice, got %d", len(docs))
	}
}
