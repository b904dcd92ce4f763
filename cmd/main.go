package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bilgisen/newspulse/internal/ai"
	"github.com/bilgisen/newspulse/internal/api"
	"github.com/bilgisen/newspulse/internal/cache"
	"github.com/bilgisen/newspulse/internal/config"
	"github.com/bilgisen/newspulse/internal/feed"
	"github.com/bilgisen/newspulse/internal/logger"
	"github.com/bilgisen/newspulse/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const version = "1.0.0"

func main() {
	// Load and validate configuration
	cfg := config.Load()

	// Initialize logger
	if err := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: "stdout",
		Pretty: cfg.LogPretty,
	}); err != nil {
		panic(err)
	}

	log := logger.Get()
	client := ai.NewGeminiClient(
		cfg.AIApiKey,
		cfg.AIModel,
		ai.WithBaseURL(cfg.AIBaseURL),
		ai.WithTimeout(cfg.AITimeout),
	)
	log.Info().
		Str("model", client.Model()).
		Str("env", cfg.Env).
		Msg("Starting application...")

	var generator ai.Generator = client

	if cfg.CacheTTL > 0 {
		store, err := newStore(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize cache")
		}
		defer func() {
			log.Info().Msg("Closing cache...")
			if err := store.Close(); err != nil {
				log.Error().Err(err).Msg("Error closing cache")
			}
		}()
		generator = ai.NewCachedGenerator(generator, store, cfg.CacheTTL, client.Model())
	}

	orchestrator := feed.NewOrchestrator(generator, cfg.DefaultLocation)

	// Create Fiber app with custom config
	app := fiber.New(fiber.Config{
		ReadTimeout:           cfg.HTTPTimeout,
		WriteTimeout:          cfg.HTTPTimeout,
		IdleTimeout:           120 * time.Second,
		ErrorHandler:          middleware.ErrorHandler,
		DisableStartupMessage: !cfg.IsDevelopment(),
		// Query values are kept in the view after the request ends.
		Immutable: true,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())

	api.SetupRoutes(app, api.NewHandlers(orchestrator, version))

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

// newStore uses Redis when REDIS_URL is set and an in-process store otherwise.
func newStore(cfg *config.Config) (cache.Store, error) {
	if cfg.RedisURL == "" {
		return cache.NewMemoryStore(), nil
	}
	client, err := cache.NewRedisClient(cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}
