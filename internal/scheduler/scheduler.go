package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/activesky/activesky/internal/store"
)

// Scheduler periodically expires stale cached analytics reports.
type Scheduler struct {
	scheduler *gocron.Scheduler
	cache     *store.MemoryStore
	interval  time.Duration
}

// New creates a new Scheduler.
func New(cache *store.MemoryStore, interval time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		cache:     cache,
		interval:  interval,
	}
}

// Start schedules the periodic prune job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		removed := s.cache.Prune()
		if removed > 0 {
			log.Printf("scheduler: pruned %d expired reports, %d cached", removed, s.cache.Len())
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
