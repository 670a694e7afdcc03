package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/activesky/activesky/internal/analytics"
	"github.com/activesky/activesky/internal/geo"
	"github.com/activesky/activesky/internal/recommend"
	"github.com/activesky/activesky/internal/weather"
)

// stubProvider returns one synthetic day per requested year.
type stubProvider struct {
	fail bool
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) FetchYear(ctx context.Context, loc weather.Location, day time.Time) (analytics.YearData, error) {
	if s.fail {
		return nil, fmt.Errorf("upstream down")
	}

	dateKey := day.Format("20060102")
	set := func(v float64) map[string]*float64 {
		return map[string]*float64{dateKey: &v}
	}
	return analytics.YearData{
		"T2M_MIN":             set(12),
		"T2M_MAX":             set(20),
		"WS2M":                set(3),
		"PRECTOTCORR":         set(0),
		"CLOUD_AMT":           set(40),
		"ALLSKY_SFC_UV_INDEX": set(4),
	}, nil
}

func newTestApp(provider weather.HistoryProvider) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": true, "message": err.Error()})
		},
	})

	svc := weather.NewService(provider, nil, analytics.DefaultChannels())
	RegisterRoutes(app, Deps{
		Service:      svc,
		Engine:       recommend.NewEngine(recommend.DefaultProfiles()),
		Resolver:     geo.NewResolver(""),
		DefaultYears: 3,
		MaxYears:     29,
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, url string) (*http.Response, []byte) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, url, nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	resp.Body.Close()
	return resp, body
}

// TestAnalyticsValidation verifies the analytics endpoint enforces its
// required query parameters and date format.
func TestAnalyticsValidation(t *testing.T) {
	app := newTestApp(&stubProvider{})

	urls := []string{
		"/api/v1/weather/analytics",                                      // everything missing
		"/api/v1/weather/analytics?place=4.6,-74.1",                      // missing date
		"/api/v1/weather/analytics?place=4.6,-74.1&date=2024-01-15",      // wrong date format
		"/api/v1/weather/analytics?place=4.6,-74.1&date=20240115&years=x",
		"/api/v1/weather/analytics?place=4.6,-74.1&date=20240115&years=40",
		"/api/v1/weather/analytics?place=Bogota&date=20240115",           // no geocoder key
	}

	for _, url := range urls {
		resp, _ := doRequest(t, app, url)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: expected status %d, got %d", url, http.StatusBadRequest, resp.StatusCode)
		}
	}
}

func TestAnalyticsHappyPath(t *testing.T) {
	app := newTestApp(&stubProvider{})

	resp, body := doRequest(t, app, "/api/v1/weather/analytics?place=4.6,-74.1&date=20240115")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.StatusCode, body)
	}

	var report weather.CachedReport
	if err := json.Unmarshal(body, &report); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if report.ID == "" {
		t.Error("expected report ID")
	}
	if report.Report == nil || report.Report.YearsAnalyzed != 3 {
		t.Fatalf("unexpected report payload: %s", body)
	}
	if report.Report.Temperature == nil {
		t.Error("expected temperature summary")
	}
}

func TestAnalyticsUpstreamFailure(t *testing.T) {
	app := newTestApp(&stubProvider{fail: true})

	resp, _ := doRequest(t, app, "/api/v1/weather/analytics?place=4.6,-74.1&date=20240115")
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected status %d, got %d", http.StatusBadGateway, resp.StatusCode)
	}
}

func TestRecommendationsSingleActivity(t *testing.T) {
	app := newTestApp(&stubProvider{})

	resp, body := doRequest(t, app,
		"/api/v1/weather/recommendations?place=4.6,-74.1&date=20240115&activity=running")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		Verdict recommend.Verdict `json:"verdict"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// 16°C midpoint, 3 m/s wind, UV 4, 0% rain, 40% clouds suits running.
	if !payload.Verdict.Recommended {
		t.Fatalf("expected recommended verdict: %s", body)
	}
}

func TestRecommendationsUnknownActivity(t *testing.T) {
	app := newTestApp(&stubProvider{})

	resp, _ := doRequest(t, app,
		"/api/v1/weather/recommendations?place=4.6,-74.1&date=20240115&activity=spelunking")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestRecommendationsAllActivities(t *testing.T) {
	app := newTestApp(&stubProvider{})

	resp, body := doRequest(t, app,
		"/api/v1/weather/recommendations?place=4.6,-74.1&date=20240115")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		Result recommend.MultiResult `json:"result"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.Result.Total != 6 {
		t.Fatalf("Total = %d, want 6", payload.Result.Total)
	}
	if payload.Result.Summary == "" {
		t.Error("expected summary string")
	}
}

func TestActivitiesCatalog(t *testing.T) {
	app := newTestApp(&stubProvider{})

	resp, body := doRequest(t, app, "/api/v1/activities")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var payload struct {
		Activities []recommend.Profile `json:"activities"`
		Total      int                 `json:"total"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.Total != 6 || len(payload.Activities) != 6 {
		t.Fatalf("expected 6 activities, got %d", payload.Total)
	}
	if payload.Activities[0].Name != "running" {
		t.Errorf("first activity = %q, want running", payload.Activities[0].Name)
	}
}
