package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/activesky/activesky/internal/analytics"
	"github.com/activesky/activesky/internal/weather"
)

// fillValue marks missing observations in NASA POWER responses.
const fillValue = -999

// NASAPowerProvider implements weather.HistoryProvider against the NASA
// POWER daily temporal point API.
type NASAPowerProvider struct {
	name       string
	baseURL    string
	community  string
	parameters []string
	httpCfg    HTTPClientConfig
	circuit    *gobreaker.CircuitBreaker
}

// NewNASAPowerProvider creates a provider querying the given channels.
func NewNASAPowerProvider(client *http.Client, channels analytics.Channels) *NASAPowerProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "nasapower",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &NASAPowerProvider{
		name:      "nasapower",
		baseURL:   "https://power.larc.nasa.gov/api/temporal/daily/point",
		community: "ag",
		parameters: []string{
			channels.TempMin,
			channels.TempMax,
			channels.Wind,
			channels.Precip,
			channels.Cloud,
			channels.UV,
		},
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
	}
}

func (p *NASAPowerProvider) Name() string {
	return p.name
}

// FetchYear requests a single day's observations. start and end are the same
// date; the response carries one date key per parameter.
func (p *NASAPowerProvider) FetchYear(ctx context.Context, loc weather.Location, day time.Time) (analytics.YearData, error) {
	dateKey := day.Format("20060102")

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("start", dateKey)
		values.Set("end", dateKey)
		values.Set("latitude", fmt.Sprintf("%f", loc.Lat))
		values.Set("longitude", fmt.Sprintf("%f", loc.Lon))
		values.Set("community", p.community)
		values.Set("parameters", strings.Join(p.parameters, ","))
		values.Set("format", "JSON")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		return req, nil
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Properties struct {
			Parameter map[string]map[string]float64 `json:"parameter"`
		} `json:"properties"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode nasapower response: %w", err)
	}

	if len(payload.Properties.Parameter) == 0 {
		return nil, fmt.Errorf("nasapower returned no parameters for %s", dateKey)
	}

	// Translate fill values to nulls so the analytics core only ever sees
	// real observations or explicit missing markers.
	data := make(analytics.YearData, len(payload.Properties.Parameter))
	for param, byDate := range payload.Properties.Parameter {
		channel := make(map[string]*float64, len(byDate))
		for date, v := range byDate {
			if v <= fillValue {
				channel[date] = nil
				continue
			}
			value := v
			channel[date] = &value
		}
		data[param] = channel
	}

	return data, nil
}
