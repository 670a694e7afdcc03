package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port string

	// GeocoderAPIKey enables resolving free-form place names. Optional;
	// without it only "lat,lon" places are accepted.
	GeocoderAPIKey string

	// HTTPTimeout bounds each outbound NASA POWER call.
	HTTPTimeout time.Duration

	// LookbackYears is the default (and maximum) number of historical years
	// aggregated per request.
	LookbackYears int

	// Report cache retention.
	CacheMaxEntries int
	CacheMaxAge     time.Duration

	// PruneInterval controls how often expired cached reports are removed.
	PruneInterval time.Duration

	// AllowedOrigins is the comma-separated CORS allowlist.
	AllowedOrigins string
}

// MaxLookbackYears caps the lookback window; NASA POWER daily coverage is
// reliable roughly this far back.
const MaxLookbackYears = 29

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")
	cfg.AllowedOrigins = getenvDefault("ALLOWED_ORIGINS", "*")

	timeoutStr := getenvDefault("NASA_HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid NASA_HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.LookbackYears = getenvInt("LOOKBACK_YEARS", MaxLookbackYears)
	if cfg.LookbackYears < 1 || cfg.LookbackYears > MaxLookbackYears {
		return nil, fmt.Errorf("LOOKBACK_YEARS must be between 1 and %d", MaxLookbackYears)
	}

	// Cache retention.
	cfg.CacheMaxEntries = getenvInt("CACHE_MAX_ENTRIES", 256)

	maxAgeStr := getenvDefault("CACHE_MAX_AGE", "24h")
	maxAge, err := time.ParseDuration(maxAgeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_MAX_AGE: %w", err)
	}
	cfg.CacheMaxAge = maxAge

	pruneStr := getenvDefault("PRUNE_INTERVAL", "15m")
	prune, err := time.ParseDuration(pruneStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PRUNE_INTERVAL: %w", err)
	}
	cfg.PruneInterval = prune

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
