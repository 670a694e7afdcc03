package weather

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/activesky/activesky/internal/analytics"
	"github.com/activesky/activesky/internal/metrics"
)

// Service orchestrates the multi-year history fetch and analytics pipeline.
type Service struct {
	provider HistoryProvider
	cache    ReportCache
	channels analytics.Channels
}

// NewService creates a new Service. cache may be nil to disable caching.
func NewService(provider HistoryProvider, cache ReportCache, channels analytics.Channels) *Service {
	return &Service{
		provider: provider,
		cache:    cache,
		channels: channels,
	}
}

// History fetches the same calendar day for each of the previous `years`
// lookback years concurrently, one provider call per year. Years that fail
// to fetch are simply absent from the result; the analysis degrades
// gracefully as long as at least one year succeeds. Results are ordered most
// recent year first.
func (s *Service) History(ctx context.Context, loc Location, day time.Time, years int) ([]analytics.YearData, error) {
	if years <= 0 {
		return nil, fmt.Errorf("years must be greater than zero")
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make([]analytics.YearData, years)
		failed  int
		lastErr error
	)

	for i := 1; i <= years; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()

			queryDay := lookbackDate(day, i)
			data, err := s.provider.FetchYear(ctx, loc, queryDay)
			if err != nil {
				// Log and continue; we want partial results when possible.
				log.Printf("provider %s fetch failed for %s on %s: %v",
					s.provider.Name(), loc.Key(), queryDay.Format("20060102"), err)
				mu.Lock()
				failed++
				lastErr = err
				mu.Unlock()
				return
			}

			mu.Lock()
			results[i-1] = data
			mu.Unlock()
		}()
	}

	wg.Wait()

	if failed == years {
		return nil, fmt.Errorf("all %d lookback years failed: %w", years, lastErr)
	}

	// Compact, preserving most-recent-first order.
	compacted := make([]analytics.YearData, 0, years)
	for _, r := range results {
		if r != nil {
			compacted = append(compacted, r)
		}
	}
	return compacted, nil
}

// Report returns the analytics report for a location and calendar day,
// computing and caching it on a miss. The cache key ignores the requested
// year: the same month and day always aggregates the same lookback window.
func (s *Service) Report(ctx context.Context, loc Location, day time.Time, years int) (CachedReport, error) {
	key := fmt.Sprintf("%s:%s:%d", loc.Key(), day.Format("0102"), years)

	if s.cache != nil {
		if cached, err := s.cache.Get(key); err == nil {
			metrics.CacheHitsTotal.Inc()
			return cached, nil
		}
		metrics.CacheMissesTotal.Inc()
	}

	raw, err := s.History(ctx, loc, day, years)
	if err != nil {
		return CachedReport{}, err
	}

	report, err := analytics.Analyze(raw, s.channels)
	if err != nil {
		return CachedReport{}, err
	}
	metrics.ReportsComputedTotal.Inc()

	cached := CachedReport{
		ID:        uuid.NewString(),
		Location:  loc,
		Date:      day.Format("20060102"),
		Years:     years,
		Report:    report,
		CreatedAt: time.Now().UTC(),
	}

	if s.cache != nil {
		s.cache.Save(key, cached)
	}
	return cached, nil
}

// lookbackDate shifts day back by yearsAgo years. A 29 February query in a
// non-leap target year falls back to 28 February.
func lookbackDate(day time.Time, yearsAgo int) time.Time {
	year := day.Year() - yearsAgo
	d := day.Day()
	if day.Month() == time.February && d == 29 && !isLeapYear(year) {
		d = 28
	}
	return time.Date(year, day.Month(), d, 0, 0, 0, 0, time.UTC)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
