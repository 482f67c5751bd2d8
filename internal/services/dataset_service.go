// Package services orchestrates dataset generation runs against the
// configured sinks.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"salesgen/internal/backend"
	"salesgen/internal/core"
	"salesgen/internal/synth"
)

// SinkResult records where a single sink wrote the dataset.
type SinkResult struct {
	Sink backend.SinkType
	Ref  string
}

// RunSummary captures the outcome of one generation run.
type RunSummary struct {
	RunID    string
	Months   int
	Products int
	Records  int
	Results  []SinkResult
	Duration time.Duration
}

// DatasetService synthesizes one dataset per run and fans it out to every
// configured sink.
type DatasetService struct {
	profile synth.Profile
	sinks   []backend.Sink
	logger  *slog.Logger
}

// NewDatasetService creates a dataset service for the given profile and sinks.
func NewDatasetService(profile synth.Profile, sinks []backend.Sink, logger *slog.Logger) *DatasetService {
	if logger == nil {
		logger = slog.Default()
	}

	return &DatasetService{
		profile: profile,
		sinks:   sinks,
		logger:  logger,
	}
}

// Run synthesizes a dataset and writes it to all sinks concurrently. The
// first sink failure cancels the remaining writes and fails the run.
func (s *DatasetService) Run(ctx context.Context) (RunSummary, error) {
	start := time.Now()

	dataset := synth.New(s.profile).Generate()
	months := core.MonthSequence(s.profile.Start, s.profile.End)

	s.logger.InfoContext(ctx, "Dataset generated",
		"run_id", dataset.RunID,
		"months", len(months),
		"products", len(s.profile.Products),
		"records", len(dataset.Records))

	results := make([]SinkResult, len(s.sinks))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, sink := range s.sinks {
		group.Go(func() error {
			ref, err := sink.Writer.WriteDataset(groupCtx, dataset)
			if err != nil {
				return fmt.Errorf("%s sink: %w", sink.Type, err)
			}
			results[i] = SinkResult{Sink: sink.Type, Ref: ref}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return RunSummary{}, err
	}

	summary := RunSummary{
		RunID:    dataset.RunID,
		Months:   len(months),
		Products: len(s.profile.Products),
		Records:  len(dataset.Records),
		Results:  results,
		Duration: time.Since(start),
	}

	s.logger.InfoContext(ctx, "Run complete",
		"run_id", summary.RunID,
		"records", summary.Records,
		"sinks", len(summary.Results),
		"duration", summary.Duration)

	return summary, nil
}

// Close releases every sink that holds external resources.
func (s *DatasetService) Close() error {
	var errs []error

	for _, sink := range s.sinks {
		if sink.Cleanup == nil {
			continue
		}
		if err := sink.Cleanup(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", sink.Type, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close dataset service: %v", errs)
	}

	return nil
}
