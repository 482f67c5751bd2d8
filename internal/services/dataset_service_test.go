package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"salesgen/internal/backend"
	"salesgen/internal/core"
	"salesgen/internal/export/memory"
	"salesgen/internal/synth"
)

func testProfile() synth.Profile {
	return synth.Profile{
		Start:       time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:         time.Date(2022, time.April, 1, 0, 0, 0, 0, time.UTC),
		Products:    synth.ProductNames(3),
		PriceMin:    core.Money{Cents: 500},
		PriceMax:    core.Money{Cents: 5000},
		QuantityMin: 50,
		QuantityMax: 500,
		Seed:        7,
	}
}

type failingWriter struct {
	err error
}

func (w *failingWriter) WriteDataset(_ context.Context, _ core.Dataset) (string, error) {
	return "", w.err
}

func TestDatasetService_Run(t *testing.T) {
	first := memory.New()
	second := memory.New()
	sinks := []backend.Sink{
		{Type: backend.MemorySink, Writer: first},
		{Type: backend.MemorySink, Writer: second},
	}

	service := NewDatasetService(testProfile(), sinks, nil)

	summary, err := service.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if summary.RunID == "" {
		t.Error("expected a run ID")
	}
	if summary.Months != 3 {
		t.Errorf("expected 3 months, got %d", summary.Months)
	}
	if summary.Products != 3 {
		t.Errorf("expected 3 products, got %d", summary.Products)
	}
	if summary.Records != 9 {
		t.Errorf("expected 9 records, got %d", summary.Records)
	}
	if len(summary.Results) != 2 {
		t.Fatalf("expected 2 sink results, got %d", len(summary.Results))
	}
	for i, result := range summary.Results {
		if result.Sink != backend.MemorySink {
			t.Errorf("result %d: expected memory sink, got %s", i, result.Sink)
		}
		if result.Ref != "mem:1" {
			t.Errorf("result %d: expected ref mem:1, got %q", i, result.Ref)
		}
	}

	for i, store := range []*memory.Store{first, second} {
		stored, ok := store.Last()
		if !ok {
			t.Fatalf("sink %d received no dataset", i)
		}
		if stored.RunID != summary.RunID {
			t.Errorf("sink %d: expected run ID %q, got %q", i, summary.RunID, stored.RunID)
		}
		if len(stored.Records) != summary.Records {
			t.Errorf("sink %d: expected %d records, got %d", i, summary.Records, len(stored.Records))
		}
	}
}

func TestDatasetService_RunSinkFailure(t *testing.T) {
	sinkErr := errors.New("disk full")
	sinks := []backend.Sink{
		{Type: backend.MemorySink, Writer: memory.New()},
		{Type: backend.CSVSink, Writer: &failingWriter{err: sinkErr}},
	}

	service := NewDatasetService(testProfile(), sinks, nil)

	_, err := service.Run(context.Background())
	if err == nil {
		t.Fatal("expected sink failure to fail the run")
	}
	if !errors.Is(err, sinkErr) {
		t.Errorf("expected wrapped sink error, got %v", err)
	}
	if !contains(err.Error(), "csv sink") {
		t.Errorf("expected error to name the failing sink, got %q", err.Error())
	}
}

func TestDatasetService_RunEmptyWindow(t *testing.T) {
	profile := testProfile()
	profile.End = profile.Start

	store := memory.New()
	service := NewDatasetService(profile, []backend.Sink{{Type: backend.MemorySink, Writer: store}}, nil)

	summary, err := service.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if summary.Months != 0 {
		t.Errorf("expected 0 months, got %d", summary.Months)
	}
	if summary.Records != 0 {
		t.Errorf("expected 0 records, got %d", summary.Records)
	}

	stored, ok := store.Last()
	if !ok {
		t.Fatal("expected the empty dataset to reach the sink")
	}
	if len(stored.Records) != 0 {
		t.Errorf("expected no records, got %d", len(stored.Records))
	}
}

func TestDatasetService_RunNoSinks(t *testing.T) {
	service := NewDatasetService(testProfile(), nil, nil)

	summary, err := service.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(summary.Results) != 0 {
		t.Errorf("expected no sink results, got %d", len(summary.Results))
	}
	if summary.Records != 9 {
		t.Errorf("expected 9 records, got %d", summary.Records)
	}
}

func TestDatasetService_Close(t *testing.T) {
	t.Run("no cleanup funcs", func(t *testing.T) {
		service := NewDatasetService(testProfile(), []backend.Sink{{Type: backend.MemorySink, Writer: memory.New()}}, nil)

		if err := service.Close(); err != nil {
			t.Fatalf("Close should not fail without cleanup funcs: %v", err)
		}
	})

	t.Run("cleanup funcs run", func(t *testing.T) {
		var closed int
		sinks := []backend.Sink{
			{Type: backend.MemorySink, Writer: memory.New(), Cleanup: func() error {
				closed++
				return nil
			}},
			{Type: backend.MemorySink, Writer: memory.New(), Cleanup: func() error {
				closed++
				return nil
			}},
		}

		service := NewDatasetService(testProfile(), sinks, nil)

		if err := service.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
		if closed != 2 {
			t.Errorf("expected 2 cleanup calls, got %d", closed)
		}
	})

	t.Run("cleanup errors collected", func(t *testing.T) {
		sinks := []backend.Sink{
			{Type: backend.SQLiteSink, Writer: memory.New(), Cleanup: func() error {
				return errors.New("close failed")
			}},
			{Type: backend.MemorySink, Writer: memory.New(), Cleanup: func() error {
				return nil
			}},
		}

		service := NewDatasetService(testProfile(), sinks, nil)

		err := service.Close()
		if err == nil {
			t.Fatal("expected cleanup error to surface")
		}
		if !contains(err.Error(), "sqlite") {
			t.Errorf("expected error to name the failing sink, got %q", err.Error())
		}
	})
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || func() bool {
		for i := 0; i <= len(s)-len(substr); i++ {
			if s[i:i+len(substr)] == substr {
				return true
			}
		}
		return false
	}())
}
