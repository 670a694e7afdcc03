package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/activesky/activesky/internal/weather"
)

func cachedAt(id string, createdAt time.Time) weather.CachedReport {
	return weather.CachedReport{ID: id, CreatedAt: createdAt}
}

func TestMemoryStoreSaveAndGet(t *testing.T) {
	s := NewMemoryStore(10, time.Hour)

	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	s.Save("k1", cachedAt("r1", time.Now()))
	got, err := s.Get("k1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "r1" {
		t.Fatalf("got report %q, want r1", got.ID)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore(10, time.Minute)

	s.Save("stale", cachedAt("r1", time.Now().Add(-2*time.Minute)))
	if _, err := s.Get("stale"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected expired entry to be treated as absent, got %v", err)
	}

	if removed := s.Prune(); removed != 1 {
		t.Fatalf("Prune removed %d, want 1", removed)
	}
	if s.Len() != 0 {
		t.Fatalf("Len = %d after prune, want 0", s.Len())
	}
}

func TestMemoryStoreEvictsOldestWhenFull(t *testing.T) {
	s := NewMemoryStore(3, 0)

	base := time.Now()
	for i := 0; i < 3; i++ {
		s.Save(fmt.Sprintf("k%d", i), cachedAt(fmt.Sprintf("r%d", i), base.Add(time.Duration(i)*time.Second)))
	}

	s.Save("k3", cachedAt("r3", base.Add(3*time.Second)))

	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	if _, err := s.Get("k0"); !errors.Is(err, ErrNotFound) {
		t.Fatal("oldest entry should have been evicted")
	}
	if _, err := s.Get("k3"); err != nil {
		t.Fatalf("newest entry missing: %v", err)
	}
}

func TestMemoryStoreOverwriteDoesNotEvict(t *testing.T) {
	s := NewMemoryStore(2, 0)

	s.Save("k0", cachedAt("r0", time.Now()))
	s.Save("k1", cachedAt("r1", time.Now()))
	s.Save("k1", cachedAt("r1b", time.Now()))

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	got, err := s.Get("k1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "r1b" {
		t.Fatalf("got %q, want overwritten r1b", got.ID)
	}
	if _, err := s.Get("k0"); err != nil {
		t.Fatalf("k0 should survive an overwrite of k1: %v", err)
	}
}
