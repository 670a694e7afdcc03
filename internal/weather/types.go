package weather

import (
	"context"
	"fmt"
	"time"

	"github.com/activesky/activesky/internal/analytics"
)

// Location is a resolved geographic point for which we query history.
type Location struct {
	Name string  `json:"name,omitempty"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Key returns a canonical string key for indexing this location in caches.
// Coordinates are truncated to ~100m so nearby requests share an entry.
func (l Location) Key() string {
	return fmt.Sprintf("%.3f:%.3f", l.Lat, l.Lon)
}

// CachedReport pairs a computed analytics report with its request identity.
type CachedReport struct {
	ID        string            `json:"id"`
	Location  Location          `json:"location"`
	Date      string            `json:"date"` // requested calendar day, YYYYMMDD
	Years     int               `json:"yearsRequested"`
	Report    *analytics.Report `json:"report"`
	CreatedAt time.Time         `json:"createdAt"`
}

// ReportCache is the contract the in-memory cache (and any future persistent
// cache) must satisfy.
type ReportCache interface {
	Get(key string) (CachedReport, error)
	Save(key string, report CachedReport)
	Prune() int
}

// HistoryProvider abstracts the external historical-weather source
// (NASA POWER in production, fakes in tests). FetchYear returns the raw
// parameter maps for a single day of a single lookback year.
type HistoryProvider interface {
	Name() string
	FetchYear(ctx context.Context, loc Location, day time.Time) (analytics.YearData, error)
}
