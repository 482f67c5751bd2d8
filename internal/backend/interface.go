package backend

import (
	"context"

	"salesgen/internal/export"
)

// SinkType names one dataset destination.
type SinkType string

const (
	CSVSink    SinkType = "csv"
	SQLiteSink SinkType = "sqlite"
	SheetsSink SinkType = "sheets"
	AMQPSink   SinkType = "amqp"
	MemorySink SinkType = "memory"
)

// String implements fmt.Stringer
func (st SinkType) String() string {
	return string(st)
}

// IsValid returns true if the sink type is valid
func (st SinkType) IsValid() bool {
	switch st {
	case CSVSink, SQLiteSink, SheetsSink, AMQPSink, MemorySink:
		return true
	default:
		return false
	}
}

// SinkTypes returns all valid sink types
func SinkTypes() []SinkType {
	return []SinkType{CSVSink, SQLiteSink, SheetsSink, AMQPSink, MemorySink}
}

// CleanupFunc releases the resources behind a sink
type CleanupFunc func() error

// Sink pairs a constructed dataset writer with its type and an optional
// cleanup function.
type Sink struct {
	Type    SinkType
	Writer  export.DatasetWriter
	Cleanup CleanupFunc
}

// Factory creates sinks based on configuration
type Factory interface {
	// CreateSinks constructs one sink per configured type, in order
	CreateSinks(ctx context.Context, config Config) ([]Sink, error)
}

// Config holds configuration for sink creation
type Config struct {
	// Sink types to construct
	Types []SinkType

	// CSV specific
	OutputPath string

	// SQLite specific
	SQLiteDBPath string

	// AMQP specific
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Google Sheets specific (credentials resolve from the environment)
	GoogleSpreadsheetID string
	GoogleSheetName     string
}
