package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// KeyPrefix namespaces every key this package writes.
const KeyPrefix = "nitg:"

// Cache stores JSON-encoded values with a TTL plus integer counters.
type Cache interface {
	// Get decodes the value at key into dest. A miss returns (false, nil).
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Incr(ctx context.Context, key string) (int64, error)
	// Counter returns the counter at key, 0 when unset.
	Counter(ctx context.Context, key string) (int64, error)
}

type memoryEntry struct {
	data    []byte
	expires time.Time
}

// Memory is an in-process Cache for single-instance deployments.
type Memory struct {
	mu       sync.Mutex
	entries  map[string]memoryEntry
	counters map[string]int64
}

func NewMemory() *Memory {
	return &Memory{
		entries:  make(map[string]memoryEntry),
		counters: make(map[string]int64),
	}
}

func (m *Memory) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	m.mu.Lock()
	e, ok := m.entries[KeyPrefix+key]
	if ok && time.Now().After(e.expires) {
		delete(m.entries, KeyPrefix+key)
		ok = false
	}
	m.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(e.data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (m *Memory) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	// Superseded list keys are never read again; drop expired entries.
	for k, e := range m.entries {
		if now.After(e.expires) {
			delete(m.entries, k)
		}
	}
	m.entries[KeyPrefix+key] = memoryEntry{data: data, expires: now.Add(ttl)}
	return nil
}

func (m *Memory) Incr(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[KeyPrefix+key]++
	return m.counters[KeyPrefix+key], nil
}

func (m *Memory) Counter(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[KeyPrefix+key], nil
}
