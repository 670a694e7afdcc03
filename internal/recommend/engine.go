package recommend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/activesky/activesky/internal/analytics"
)

var (
	// ErrUnknownActivity is returned when the requested activity has no
	// configured profile.
	ErrUnknownActivity = errors.New("activity not defined")

	// ErrInsufficientData is returned when the analytics report carries no
	// usable metric summaries.
	ErrInsufficientData = errors.New("insufficient data for evaluation")
)

// Conditions holds the scalars derived from an analytics report, one per
// decision dimension. A nil field means the underlying metric summary was
// unavailable and its dimension is skipped during evaluation.
type Conditions struct {
	Temperature     *float64 `json:"temperature,omitempty"`
	Wind            *float64 `json:"wind,omitempty"`
	UV              *float64 `json:"uv,omitempty"`
	RainProbability *float64 `json:"rainProbability,omitempty"`
	Clouds          *float64 `json:"clouds,omitempty"`
}

func (c Conditions) value(d Dimension) *float64 {
	switch d {
	case DimTemperature:
		return c.Temperature
	case DimWind:
		return c.Wind
	case DimUV:
		return c.UV
	case DimRainProbability:
		return c.RainProbability
	case DimClouds:
		return c.Clouds
	default:
		return nil
	}
}

func (c Conditions) empty() bool {
	return c.Temperature == nil && c.Wind == nil && c.UV == nil &&
		c.RainProbability == nil && c.Clouds == nil
}

// Violation records one out-of-range dimension for an activity.
type Violation struct {
	Dimension Dimension `json:"dimension"`
	Value     float64   `json:"value"`
	Kind      string    `json:"kind"` // "too_low" or "too_high"
	Message   string    `json:"message"`
}

// Verdict is the outcome of evaluating one activity against a report.
type Verdict struct {
	Activity    string      `json:"activity"`
	Recommended bool        `json:"recommended"`
	Violations  []Violation `json:"violations,omitempty"`
	Message     string      `json:"message"`
}

// MultiResult is the outcome of evaluating several activities at once.
type MultiResult struct {
	Conditions  Conditions `json:"conditions"`
	Verdicts    []Verdict  `json:"verdicts"`
	BestOption  string     `json:"bestOption,omitempty"`
	Recommended int        `json:"recommended"`
	Total       int        `json:"total"`
	Summary     string     `json:"summary"`
}

// Engine screens analytics reports against a configured activity table.
// The table is read-only after construction; an Engine is safe for
// concurrent use.
type Engine struct {
	profiles []Profile
	byName   map[string]int
}

// NewEngine builds an engine over the given profile table. Profile order is
// preserved for best-option selection.
func NewEngine(profiles []Profile) *Engine {
	byName := make(map[string]int, len(profiles))
	for i, p := range profiles {
		byName[strings.ToLower(p.Name)] = i
	}
	return &Engine{profiles: profiles, byName: byName}
}

// Profiles returns the configured activity table in order.
func (e *Engine) Profiles() []Profile {
	return e.profiles
}

// DeriveConditions extracts the per-dimension scalars from a report.
// Temperature is the midpoint of the mean daily minimum and maximum.
func DeriveConditions(r *analytics.Report) Conditions {
	var c Conditions
	if r == nil {
		return c
	}
	if t := r.Temperature; t != nil {
		mid := (t.Min.Average + t.Max.Average) / 2
		c.Temperature = &mid
	}
	if w := r.Wind; w != nil {
		v := w.AverageSpeed
		c.Wind = &v
	}
	if u := r.UV; u != nil {
		v := u.AverageIndex
		c.UV = &v
	}
	if p := r.Precipitation; p != nil {
		v := p.ProbabilityOfRain
		c.RainProbability = &v
	}
	if cl := r.Clouds; cl != nil {
		v := cl.AverageCoverage
		c.Clouds = &v
	}
	return c
}

// Evaluate screens one activity against the report. Dimensions whose derived
// scalar is unavailable are skipped; the remaining rules are checked in
// table order.
func (e *Engine) Evaluate(r *analytics.Report, activity string) (Verdict, error) {
	idx, ok := e.byName[strings.ToLower(activity)]
	if !ok {
		return Verdict{}, fmt.Errorf("%w: %q", ErrUnknownActivity, activity)
	}

	conditions := DeriveConditions(r)
	if conditions.empty() {
		return Verdict{}, ErrInsufficientData
	}

	return e.evaluate(e.profiles[idx], conditions), nil
}

func (e *Engine) evaluate(p Profile, conditions Conditions) Verdict {
	verdict := Verdict{Activity: p.Name}

	for _, rule := range p.Rules {
		v := conditions.value(rule.Dimension)
		if v == nil {
			continue
		}
		switch {
		case *v < rule.Min:
			verdict.Violations = append(verdict.Violations, Violation{
				Dimension: rule.Dimension,
				Value:     *v,
				Kind:      "too_low",
				Message:   fmt.Sprintf("%s too low (%.1f) for %s", rule.Dimension, *v, p.Name),
			})
		case *v > rule.Max:
			verdict.Violations = append(verdict.Violations, Violation{
				Dimension: rule.Dimension,
				Value:     *v,
				Kind:      "too_high",
				Message:   fmt.Sprintf("%s too high (%.1f) for %s", rule.Dimension, *v, p.Name),
			})
		}
	}

	if len(verdict.Violations) == 0 {
		verdict.Recommended = true
		verdict.Message = fmt.Sprintf("historical conditions recommended for %s", p.Name)
	} else {
		parts := make([]string, len(verdict.Violations))
		for i, viol := range verdict.Violations {
			parts[i] = viol.Message
		}
		verdict.Message = fmt.Sprintf("historical conditions not recommended for %s: %s",
			p.Name, strings.Join(parts, "; "))
	}
	return verdict
}

// EvaluateAll evaluates the named activities (or every configured activity
// when the list is empty) and selects the first recommended one, in table
// order, as the best option.
func (e *Engine) EvaluateAll(r *analytics.Report, activities []string) (*MultiResult, error) {
	conditions := DeriveConditions(r)
	if conditions.empty() {
		return nil, ErrInsufficientData
	}

	selected := e.profiles
	if len(activities) > 0 {
		selected = make([]Profile, 0, len(activities))
		for _, name := range activities {
			idx, ok := e.byName[strings.ToLower(name)]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownActivity, name)
			}
			selected = append(selected, e.profiles[idx])
		}
	}

	result := &MultiResult{
		Conditions: conditions,
		Verdicts:   make([]Verdict, 0, len(selected)),
		Total:      len(selected),
	}

	for _, p := range selected {
		verdict := e.evaluate(p, conditions)
		if verdict.Recommended {
			result.Recommended++
			if result.BestOption == "" {
				result.BestOption = p.Name
			}
		}
		result.Verdicts = append(result.Verdicts, verdict)
	}

	result.Summary = fmt.Sprintf("%d of %d activities recommended",
		result.Recommended, result.Total)
	return result, nil
}
