package httpapi

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/activesky/activesky/internal/analytics"
	"github.com/activesky/activesky/internal/geo"
	"github.com/activesky/activesky/internal/metrics"
	"github.com/activesky/activesky/internal/recommend"
	"github.com/activesky/activesky/internal/weather"
)

var validate = validator.New()

// Deps bundles the collaborators the HTTP handlers need.
type Deps struct {
	Service      *weather.Service
	Engine       *recommend.Engine
	Resolver     *geo.Resolver
	DefaultYears int
	MaxYears     int
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, deps Deps) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/analytics", func(c *fiber.Ctx) error {
		req, err := parseHistoryQuery(c, deps)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		loc, err := deps.Resolver.Resolve(req.Place)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		report, err := deps.Service.Report(c.Context(), loc, req.day(), req.Years)
		if err != nil {
			return translateReportError(err)
		}

		return c.JSON(report)
	})

	v1.Get("/weather/recommendations", func(c *fiber.Ctx) error {
		req, err := parseHistoryQuery(c, deps)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		loc, err := deps.Resolver.Resolve(req.Place)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		report, err := deps.Service.Report(c.Context(), loc, req.day(), req.Years)
		if err != nil {
			return translateReportError(err)
		}

		activities := splitActivities(c.Query("activity"))

		if len(activities) == 1 {
			verdict, err := deps.Engine.Evaluate(report.Report, activities[0])
			if err != nil {
				return translateEvaluationError(err)
			}
			countVerdicts(verdict)
			return c.JSON(fiber.Map{
				"reportId": report.ID,
				"location": report.Location,
				"date":     report.Date,
				"verdict":  verdict,
			})
		}

		result, err := deps.Engine.EvaluateAll(report.Report, activities)
		if err != nil {
			return translateEvaluationError(err)
		}
		countVerdicts(result.Verdicts...)
		return c.JSON(fiber.Map{
			"reportId": report.ID,
			"location": report.Location,
			"date":     report.Date,
			"result":   result,
		})
	})

	v1.Get("/activities", func(c *fiber.Ctx) error {
		profiles := deps.Engine.Profiles()
		return c.JSON(fiber.Map{
			"activities": profiles,
			"total":      len(profiles),
		})
	})
}

// historyQuery holds query parameters shared by the analytics and
// recommendations endpoints.
type historyQuery struct {
	Place string `validate:"required"`
	Date  string `validate:"required,datetime=20060102"`
	Years int    `validate:"required,min=1"`

	parsedDay time.Time
}

func (h historyQuery) day() time.Time {
	return h.parsedDay
}

func parseHistoryQuery(c *fiber.Ctx, deps Deps) (historyQuery, error) {
	q := historyQuery{
		Place: c.Query("place"),
		Date:  c.Query("date"),
		Years: deps.DefaultYears,
	}

	if yearsStr := c.Query("years"); yearsStr != "" {
		years, err := strconv.Atoi(yearsStr)
		if err != nil {
			return q, errors.New("years must be an integer")
		}
		q.Years = years
	}

	if err := validate.Struct(q); err != nil {
		return q, err
	}
	if deps.MaxYears > 0 && q.Years > deps.MaxYears {
		return q, errors.New("years exceeds the supported lookback window")
	}

	day, err := time.ParseInLocation("20060102", q.Date, time.UTC)
	if err != nil {
		return q, errors.New("date must have format YYYYMMDD")
	}
	q.parsedDay = day

	return q, nil
}

func splitActivities(param string) []string {
	if param == "" {
		return nil
	}
	var names []string
	for _, part := range strings.Split(param, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

func countVerdicts(verdicts ...recommend.Verdict) {
	for _, v := range verdicts {
		outcome := "not_recommended"
		if v.Recommended {
			outcome = "recommended"
		}
		metrics.EvaluationsTotal.WithLabelValues(v.Activity, outcome).Inc()
	}
}

func translateReportError(err error) error {
	if errors.Is(err, analytics.ErrNoData) {
		return fiber.NewError(fiber.StatusNotFound, "no historical weather data for requested location and date")
	}
	return fiber.NewError(fiber.StatusBadGateway, "failed to fetch historical weather data")
}

func translateEvaluationError(err error) error {
	switch {
	case errors.Is(err, recommend.ErrUnknownActivity):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, recommend.ErrInsufficientData):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to evaluate activities")
	}
}
