package recommend

import (
	"errors"
	"testing"

	"github.com/activesky/activesky/internal/analytics"
)

// reportWith builds a fully-populated analytics report with the given derived
// values: temperature midpoint, mean wind, mean UV, rain probability, mean
// cloud coverage.
func reportWith(tempMid, wind, uv, rainProb, clouds float64) *analytics.Report {
	return &analytics.Report{
		Temperature: &analytics.TemperatureSummary{
			Min: analytics.Stats{Average: tempMid - 5},
			Max: analytics.Stats{Average: tempMid + 5},
		},
		Wind:          &analytics.WindSummary{AverageSpeed: wind},
		UV:            &analytics.UVSummary{AverageIndex: uv},
		Precipitation: &analytics.PrecipitationSummary{ProbabilityOfRain: rainProb},
		Clouds:        &analytics.CloudSummary{AverageCoverage: clouds},
		YearsAnalyzed: 10,
	}
}

func TestDeriveConditionsMidpoint(t *testing.T) {
	report := &analytics.Report{
		Temperature: &analytics.TemperatureSummary{
			Min: analytics.Stats{Average: 10.0},
			Max: analytics.Stats{Average: 20.0},
		},
	}

	conditions := DeriveConditions(report)
	if conditions.Temperature == nil {
		t.Fatal("expected temperature condition")
	}
	if *conditions.Temperature != 15.0 {
		t.Fatalf("temperature midpoint = %v, want 15.0", *conditions.Temperature)
	}
	if conditions.Wind != nil || conditions.UV != nil {
		t.Error("absent summaries must yield nil conditions")
	}
}

func TestEvaluateRecommended(t *testing.T) {
	engine := NewEngine(DefaultProfiles())
	report := reportWith(16, 3, 4, 10, 40) // inside every running range

	verdict, err := engine.Evaluate(report, "running")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !verdict.Recommended {
		t.Fatalf("expected recommended verdict, got %+v", verdict)
	}
	if len(verdict.Violations) != 0 {
		t.Fatalf("expected zero violations, got %v", verdict.Violations)
	}
}

func TestEvaluateViolationsInTableOrder(t *testing.T) {
	engine := NewEngine(DefaultProfiles())
	// Temperature below the running range, UV above it.
	report := reportWith(5, 3, 9, 10, 40)

	verdict, err := engine.Evaluate(report, "running")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if verdict.Recommended {
		t.Fatal("expected not recommended")
	}
	if len(verdict.Violations) != 2 {
		t.Fatalf("expected 2 violations, got %d: %v", len(verdict.Violations), verdict.Violations)
	}
	if verdict.Violations[0].Dimension != DimTemperature || verdict.Violations[0].Kind != "too_low" {
		t.Errorf("first violation = %+v, want temperature too_low", verdict.Violations[0])
	}
	if verdict.Violations[1].Dimension != DimUV || verdict.Violations[1].Kind != "too_high" {
		t.Errorf("second violation = %+v, want uv too_high", verdict.Violations[1])
	}
}

func TestEvaluateSkipsUnavailableDimensions(t *testing.T) {
	engine := NewEngine(DefaultProfiles())
	report := reportWith(16, 3, 4, 10, 40)
	report.Wind = nil // wind dimension unavailable

	verdict, err := engine.Evaluate(report, "running")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !verdict.Recommended {
		t.Fatalf("missing dimension must be skipped, got %+v", verdict)
	}
}

func TestEvaluateUnknownActivity(t *testing.T) {
	engine := NewEngine(DefaultProfiles())
	report := reportWith(16, 3, 4, 10, 40)

	_, err := engine.Evaluate(report, "spelunking")
	if !errors.Is(err, ErrUnknownActivity) {
		t.Fatalf("expected ErrUnknownActivity, got %v", err)
	}
}

func TestEvaluateInsufficientData(t *testing.T) {
	engine := NewEngine(DefaultProfiles())

	if _, err := engine.Evaluate(&analytics.Report{}, "running"); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData for empty report, got %v", err)
	}
	if _, err := engine.Evaluate(nil, "running"); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData for nil report, got %v", err)
	}
}

func TestEvaluateAllSummary(t *testing.T) {
	engine := NewEngine(DefaultProfiles())
	// 16°C mid, calm wind, low UV, 10% rain, 40% clouds: suits running,
	// cycling, hiking, camping and picnic but not beach (too cold).
	report := reportWith(16, 3, 4, 10, 40)

	result, err := engine.EvaluateAll(report, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Total != 6 {
		t.Fatalf("Total = %d, want 6", result.Total)
	}
	if result.Recommended != 5 {
		t.Fatalf("Recommended = %d, want 5 (%+v)", result.Recommended, result.Verdicts)
	}
	if result.Summary != "5 of 6 activities recommended" {
		t.Errorf("Summary = %q", result.Summary)
	}
	// First recommended activity in table order.
	if result.BestOption != "running" {
		t.Errorf("BestOption = %q, want running", result.BestOption)
	}
}

func TestEvaluateAllSubset(t *testing.T) {
	engine := NewEngine(DefaultProfiles())
	report := reportWith(25, 3, 5, 5, 30)

	result, err := engine.EvaluateAll(report, []string{"beach", "running"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Total != 2 {
		t.Fatalf("Total = %d, want 2", result.Total)
	}
	// 25°C midpoint is too hot for running but fine for the beach; the
	// caller's subset order decides the best option.
	if result.BestOption != "beach" {
		t.Errorf("BestOption = %q, want beach (%+v)", result.BestOption, result.Verdicts)
	}
}

func TestEvaluateAllUnknownActivity(t *testing.T) {
	engine := NewEngine(DefaultProfiles())
	report := reportWith(16, 3, 4, 10, 40)

	_, err := engine.EvaluateAll(report, []string{"running", "spelunking"})
	if !errors.Is(err, ErrUnknownActivity) {
		t.Fatalf("expected ErrUnknownActivity, got %v", err)
	}
}

func TestEvaluateAllNoBestOption(t *testing.T) {
	engine := NewEngine(DefaultProfiles())
	report := reportWith(-5, 20, 12, 95, 100) // hostile on every axis

	result, err := engine.EvaluateAll(report, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Recommended != 0 || result.BestOption != "" {
		t.Fatalf("expected no recommended activities, got %+v", result)
	}
	if result.Summary != "0 of 6 activities recommended" {
		t.Errorf("Summary = %q", result.Summary)
	}
}
