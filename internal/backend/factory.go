package backend

import (
	"context"
	"fmt"
	"log/slog"

	"salesgen/internal/amqp"
	"salesgen/internal/export/csvfile"
	gsheet "salesgen/internal/export/google"
	"salesgen/internal/export/memory"
	"salesgen/internal/storage"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new sink factory
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{
		logger: logger,
	}
}

// CreateSinks implements Factory.CreateSinks. On failure it tears down the
// sinks already constructed before returning.
func (f *DefaultFactory) CreateSinks(ctx context.Context, config Config) ([]Sink, error) {
	if len(config.Types) == 0 {
		return nil, fmt.Errorf("no sink types configured")
	}

	sinks := make([]Sink, 0, len(config.Types))
	for _, t := range config.Types {
		sink, err := f.createSink(ctx, t, config)
		if err != nil {
			closeSinks(sinks, f.logger)
			return nil, fmt.Errorf("create %s sink: %w", t, err)
		}
		sinks = append(sinks, sink)
	}
	return sinks, nil
}

func (f *DefaultFactory) createSink(ctx context.Context, t SinkType, config Config) (Sink, error) {
	if !t.IsValid() {
		return Sink{}, fmt.Errorf("invalid sink type: %s", t)
	}

	switch t {
	case CSVSink:
		return f.createCSVSink(config)
	case SQLiteSink:
		return f.createSQLiteSink(config)
	case SheetsSink:
		return f.createSheetsSink(ctx)
	case AMQPSink:
		return f.createAMQPSink(config)
	case MemorySink:
		return f.createMemorySink()
	default:
		return Sink{}, fmt.Errorf("unsupported sink type: %s", t)
	}
}

func (f *DefaultFactory) createCSVSink(config Config) (Sink, error) {
	if config.OutputPath == "" {
		return Sink{}, fmt.Errorf("output path is required")
	}

	f.logger.Info("Initialized CSV sink", "path", config.OutputPath)

	return Sink{
		Type:   CSVSink,
		Writer: csvfile.New(config.OutputPath),
	}, nil
}

func (f *DefaultFactory) createSQLiteSink(config Config) (Sink, error) {
	repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
	if err != nil {
		return Sink{}, fmt.Errorf("initialize SQLite repository: %w", err)
	}

	f.logger.Info("Initialized SQLite sink", "db_path", config.SQLiteDBPath)

	return Sink{
		Type:    SQLiteSink,
		Writer:  repo,
		Cleanup: repo.Close,
	}, nil
}

func (f *DefaultFactory) createSheetsSink(ctx context.Context) (Sink, error) {
	cli, err := gsheet.NewFromEnv(ctx)
	if err != nil {
		return Sink{}, fmt.Errorf("initialize Google Sheets client: %w", err)
	}

	f.logger.Info("Initialized Google Sheets sink")

	return Sink{
		Type:   SheetsSink,
		Writer: cli,
	}, nil
}

func (f *DefaultFactory) createAMQPSink(config Config) (Sink, error) {
	client, err := amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue)
	if err != nil {
		return Sink{}, fmt.Errorf("initialize AMQP client: %w", err)
	}

	f.logger.Info("Initialized AMQP sink",
		"exchange", config.AMQPExchange,
		"queue", config.AMQPQueue)

	return Sink{
		Type:    AMQPSink,
		Writer:  client,
		Cleanup: client.Close,
	}, nil
}

func (f *DefaultFactory) createMemorySink() (Sink, error) {
	f.logger.Info("Initialized memory sink")

	return Sink{
		Type:   MemorySink,
		Writer: memory.New(),
	}, nil
}

func closeSinks(sinks []Sink, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	for _, s := range sinks {
		if s.Cleanup == nil {
			continue
		}
		if err := s.Cleanup(); err != nil {
			logger.Warn("Failed to clean up sink", "sink", s.Type, "error", err)
		}
	}
}
