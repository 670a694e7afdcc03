package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/activesky/activesky/internal/analytics"
	httpapi "github.com/activesky/activesky/internal/api/http"
	"github.com/activesky/activesky/internal/config"
	"github.com/activesky/activesky/internal/geo"
	"github.com/activesky/activesky/internal/recommend"
	"github.com/activesky/activesky/internal/scheduler"
	"github.com/activesky/activesky/internal/store"
	"github.com/activesky/activesky/internal/weather"
	"github.com/activesky/activesky/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound NASA POWER calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	channels := analytics.DefaultChannels()

	// In-memory report cache with configured retention.
	cache := store.NewMemoryStore(cfg.CacheMaxEntries, cfg.CacheMaxAge)

	// Provider with resilience (backoff + circuit breaker).
	provider := providers.NewNASAPowerProvider(httpClient, channels)

	// Core service orchestrating the history fetch and analytics.
	service := weather.NewService(provider, cache, channels)

	// Activity recommendation engine over the built-in profile table.
	engine := recommend.NewEngine(recommend.DefaultProfiles())

	resolver := geo.NewResolver(cfg.GeocoderAPIKey)

	// Scheduler that periodically expires stale cached reports.
	sched := scheduler.New(cache, cfg.PruneInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "activesky",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "activesky",
		})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API routes.
	httpapi.RegisterRoutes(app, httpapi.Deps{
		Service:      service,
		Engine:       engine,
		Resolver:     resolver,
		DefaultYears: cfg.LookbackYears,
		MaxYears:     config.MaxLookbackYears,
	})

	// Start server with graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
