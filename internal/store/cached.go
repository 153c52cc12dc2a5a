package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/nitgconnect/backend/internal/cache"
)

// CachedStore serves List results from a cache. Every successful write to a collection bumps
// that collection's generation counter, so cached lists are never served after a write made
// through this process or any other sharing the same cache.
type CachedStore struct {
	Store
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedStore(inner Store, c cache.Cache, ttl time.Duration) *CachedStore {
	return &CachedStore{Store: inner, cache: c, ttl: ttl}
}

func (s *CachedStore) Collection(name string) Collection {
	return &cachedCollection{Collection: s.Store.Collection(name), cache: s.cache, ttl: s.ttl}
}

type cachedCollection struct {
	Collection
	cache cache.Cache
	ttl   time.Duration
}

func (c *cachedCollection) genKey() string {
	return "gen:" + c.Name()
}

func (c *cachedCollection) List(ctx context.Context, q Query) ([]Document, error) {
	gen, err := c.cache.Counter(ctx, c.genKey())
	if err != nil {
		log.Printf("[cache] generation read failed for %s: %v", c.Name(), err)
		return c.Collection.List(ctx, q)
	}
	key := fmt.Sprintf("list:%s:%d:%s:%d:%d:%s", c.Name(), gen, q.OrderBy, q.Direction, q.Limit, q.NotNull)

	var docs []Document
	if hit, err := c.cache.Get(ctx, key, &docs); err == nil && hit {
		return docs, nil
	}

	docs, err = c.Collection.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Set(ctx, key, docs, c.ttl); err != nil {
		log.Printf("[cache] set failed for %s: %v", key, err)
	}
	return docs, nil
}

func (c *cachedCollection) invalidate(ctx context.Context) {
	if _, err := c.cache.Incr(ctx, c.genKey()); err != nil {
		log.Printf("[cache] invalidate failed for %s: %v", c.Name(), err)
	}
}

func (c *cachedCollection) Add(ctx context.Context, fields map[string]interface{}) (Document, error) {
	doc, err := c.Collection.Add(ctx, fields)
	if err == nil {
		c.invalidate(ctx)
	}
	return doc, err
}

func (c *cachedCollection) Set(ctx context.Context, id string, fields map[string]interface{}, merge bool) error {
	err := c.Collection.Set(ctx, id, fields, merge)
	if err == nil {
		c.invalidate(ctx)
	}
	return err
}

func (c *cachedCollection) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	err := c.Collection.Update(ctx, id, fields)
	if err == nil {
		c.invalidate(ctx)
	}
	return err
}

func (c *cachedCollection) Delete(ctx context.Context, id string) error {
	err := c.Collection.Delete(ctx, id)
	if err == nil {
		c.invalidate(ctx)
	}
	return err
}
