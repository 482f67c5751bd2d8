package main

import (
	"fmt"
	"os"

	"salesgen/internal/cli"
	"salesgen/internal/log"
	"salesgen/internal/services"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	cli.LoadEnvFile()

	logger := cli.SetupLogger()

	cfg := cli.LoadAndValidateConfig(logger)

	profile, err := cfg.Profile()
	if err != nil {
		logger.Error("Failed to build generation profile", log.FieldError, err)
		os.Exit(1)
	}

	logger.Info("Starting salesgen",
		"sinks", cfg.Sinks,
		log.FieldPath, cfg.OutputPath,
		"start", cfg.StartDate,
		"end", cfg.EndDate,
		"products", cfg.ProductCount)

	ctx, cancel := cli.RunContext(logger, cfg.RunTimeout)
	defer cancel()

	sinks := cli.InitSinks(ctx, logger, cfg)

	service := services.NewDatasetService(profile, sinks,
		logger.WithComponent(log.ComponentService).Logger)

	summary, err := service.Run(ctx)
	if err != nil {
		logger.Error("Generation run failed", log.FieldError, err)
		if cerr := service.Close(); cerr != nil {
			logger.Warn("Sink cleanup failed", log.FieldError, cerr)
		}
		os.Exit(1)
	}

	if err := service.Close(); err != nil {
		logger.Warn("Sink cleanup failed", log.FieldError, err)
	}

	logger.Info("Generation complete",
		log.FieldRunID, summary.RunID,
		log.FieldRecords, summary.Records,
		"sinks", len(summary.Results),
		"duration", summary.Duration)

	fmt.Printf("✅ %s generated with %d months of sample data.\n", cfg.OutputPath, summary.Months)
}
