package store

import (
	"errors"
	"sync"
	"time"

	"github.com/activesky/activesky/internal/weather"
)

var (
	// ErrNotFound is returned when no cached report exists for a given key.
	ErrNotFound = errors.New("no cached report for key")
)

type entry struct {
	report weather.CachedReport
}

// MemoryStore is a concurrency-safe in-memory cache of computed analytics
// reports keyed by location, calendar day and lookback window.
type MemoryStore struct {
	mu sync.RWMutex

	data map[string]entry

	// retention configuration
	maxEntries int           // max number of cached reports
	maxAge     time.Duration // optional max age for cached reports
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxEntries is <= 0, it is treated as unlimited.
func NewMemoryStore(maxEntries int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]entry),
		maxEntries: maxEntries,
		maxAge:     maxAge,
	}
}

// Save stores a report under the given key, evicting the oldest entry when
// the cache is full.
func (s *MemoryStore) Save(key string, report weather.CachedReport) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxEntries > 0 && len(s.data) >= s.maxEntries {
		if _, exists := s.data[key]; !exists {
			s.evictOldestLocked()
		}
	}
	s.data[key] = entry{report: report}
}

// Get returns the cached report for a key, treating expired entries as
// absent.
func (s *MemoryStore) Get(key string) (weather.CachedReport, error) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return weather.CachedReport{}, ErrNotFound
	}
	if s.maxAge > 0 && time.Since(e.report.CreatedAt) > s.maxAge {
		return weather.CachedReport{}, ErrNotFound
	}
	return e.report, nil
}

// Prune removes expired entries and returns how many were removed.
func (s *MemoryStore) Prune() int {
	if s.maxAge <= 0 {
		return 0
	}

	cutoff := time.Now().Add(-s.maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, e := range s.data {
		if e.report.CreatedAt.Before(cutoff) {
			delete(s.data, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of cached reports, including not-yet-pruned
// expired ones.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *MemoryStore) evictOldestLocked() {
	var oldestKey string
	var oldestAt time.Time
	for key, e := range s.data {
		if oldestKey == "" || e.report.CreatedAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = e.report.CreatedAt
		}
	}
	if oldestKey != "" {
		delete(s.data, oldestKey)
	}
}
