package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps collections in process. Used for local development and tests.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]interface{}
	last        time.Time
	now         func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]map[string]map[string]interface{}),
		now:         time.Now,
	}
}

func (s *MemoryStore) Collection(name string) Collection {
	return &memoryCollection{store: s, name: name}
}

func (s *MemoryStore) Close() error { return nil }

// clock returns a strictly increasing UTC time so server timestamps never tie.
// Caller holds s.mu.
func (s *MemoryStore) clock() time.Time {
	t := s.now().UTC()
	if !t.After(s.last) {
		t = s.last.Add(time.Microsecond)
	}
	s.last = t
	return t
}

type memoryCollection struct {
	store *MemoryStore
	name  string
}

func (c *memoryCollection) Name() string { return c.name }

func (c *memoryCollection) docs() map[string]map[string]interface{} {
	m, ok := c.store.collections[c.name]
	if !ok {
		m = make(map[string]map[string]interface{})
		c.store.collections[c.name] = m
	}
	return m
}

func (c *memoryCollection) List(ctx context.Context, q Query) ([]Document, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	out := make([]Document, 0, len(c.store.collections[c.name]))
	for id, fields := range c.store.collections[c.name] {
		out = append(out, toDocument(id, fields))
	}
	return sortDocuments(out, q), nil
}

func (c *memoryCollection) Get(ctx context.Context, id string) (Document, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	fields, ok := c.store.collections[c.name][id]
	if !ok {
		return nil, ErrNotFound
	}
	return toDocument(id, fields), nil
}

func (c *memoryCollection) Add(ctx context.Context, fields map[string]interface{}) (Document, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	id := uuid.New().String()
	stored := resolve(fields, c.store.clock())
	c.docs()[id] = stored
	return toDocument(id, stored), nil
}

func (c *memoryCollection) Set(ctx context.Context, id string, fields map[string]interface{}, merge bool) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	resolved := resolve(fields, c.store.clock())
	docs := c.docs()
	existing, ok := docs[id]
	if !merge || !ok {
		docs[id] = resolved
		return nil
	}
	for k, v := range resolved {
		existing[k] = v
	}
	return nil
}

func (c *memoryCollection) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	existing, ok := c.docs()[id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range resolve(fields, c.store.clock()) {
		existing[k] = v
	}
	return nil
}

func (c *memoryCollection) Delete(ctx context.Context, id string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	delete(c.docs(), id)
	return nil
}

func toDocument(id string, fields map[string]interface{}) Document {
	d := make(Document, len(fields)+1)
	for k, v := range fields {
		d[k] = v
	}
	d["id"] = id
	return d
}
