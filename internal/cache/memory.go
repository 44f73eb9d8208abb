package cache

import (
	"context"
	"sync"
	"time"

	"github.com/shoply/shoply-backend/internal/models"
)

const DefaultMaxEntries = 1000

type entry struct {
	data      []models.PlatformResult
	timestamp time.Time
}

// Memory is the default in-process Store: a mutex-guarded map with one fixed
// TTL for the process lifetime. An expired entry stays in the map until the
// next Get that touches it.
type Memory struct {
	mu         sync.Mutex
	entries    map[string]entry
	ttl        time.Duration
	maxEntries int

	// now is swapped out in tests to control expiry.
	now func() time.Time
}

func NewMemory(ttl time.Duration, maxEntries int) *Memory {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Memory{
		entries:    make(map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]models.PlatformResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if m.now().Sub(e.timestamp) > m.ttl {
		delete(m.entries, key)
		return nil, false
	}
	return e.data, true
}

// Set overwrites any existing entry for key, stamped at the current time.
func (m *Memory) Set(_ context.Context, key string, value []models.PlatformResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[key]; !exists && len(m.entries) >= m.maxEntries {
		m.evictLocked()
	}
	m.entries[key] = entry{data: value, timestamp: m.now()}
}

// evictLocked frees at least one slot: expired entries go first, then the
// oldest remaining entry.
func (m *Memory) evictLocked() {
	now := m.now()
	for key, e := range m.entries {
		if now.Sub(e.timestamp) > m.ttl {
			delete(m.entries, key)
		}
	}
	if len(m.entries) < m.maxEntries {
		return
	}

	var oldestKey string
	var oldest time.Time
	for key, e := range m.entries {
		if oldestKey == "" || e.timestamp.Before(oldest) {
			oldestKey = key
			oldest = e.timestamp
		}
	}
	delete(m.entries, oldestKey)
}

// Stats reports every stored entry in TotalKeys, including stale ones that
// have not been touched since expiring; ActiveKeys counts only entries still
// within the TTL.
func (m *Memory) Stats(_ context.Context) models.CacheStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	active := 0
	for _, e := range m.entries {
		if now.Sub(e.timestamp) <= m.ttl {
			active++
		}
	}
	return models.CacheStats{
		TotalKeys:  len(m.entries),
		ActiveKeys: active,
		TTLSeconds: int(m.ttl.Seconds()),
	}
}
