// Package cli provides common initialization utilities for the salesgen
// binary.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"salesgen/internal/backend"
	"salesgen/internal/config"
	"salesgen/internal/log"
)

// SetupLogger initializes structured logging with default settings.
// Returns the configured logger and installs its handler as the slog
// default.
func SetupLogger() *log.Logger {
	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// InitSinks builds every sink named in the configuration.
// Returns the sinks or exits the process on failure.
func InitSinks(ctx context.Context, logger *log.Logger, cfg *config.Config) []backend.Sink {
	sinkCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Failed to map sink configuration", log.FieldError, err)
		os.Exit(1)
	}
	if err := sinkCfg.Validate(); err != nil {
		logger.Error("Sink configuration invalid", log.FieldError, err)
		os.Exit(1)
	}

	factory := backend.NewFactory(logger.WithComponent(log.ComponentBackend).Logger)
	sinks, err := factory.CreateSinks(ctx, sinkCfg)
	if err != nil {
		logger.Error("Failed to initialize sinks", log.FieldError, err)
		os.Exit(1)
	}
	return sinks
}

// RunContext returns the context for a single generation run.
// The context is cancelled when the run timeout elapses or on
// SIGINT/SIGTERM.
func RunContext(logger *log.Logger, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Warn("Shutdown signal received", log.FieldSignal, sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
