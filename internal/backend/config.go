package backend

import (
	"fmt"

	"salesgen/internal/config"
)

// FromAppConfig converts the application config to sink configuration
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	types := make([]SinkType, 0, len(appConfig.Sinks))
	for _, name := range appConfig.Sinks {
		t := SinkType(name)
		if !t.IsValid() {
			return Config{}, fmt.Errorf("invalid sink type in config: %s", name)
		}
		types = append(types, t)
	}

	return Config{
		Types: types,

		// CSV configuration
		OutputPath: appConfig.OutputPath,

		// SQLite configuration
		SQLiteDBPath: appConfig.SQLiteDBPath,

		// AMQP configuration
		AMQPURL:      appConfig.AMQPURL,
		AMQPExchange: appConfig.AMQPExchange,
		AMQPQueue:    appConfig.AMQPQueue,

		// Google Sheets configuration
		GoogleSpreadsheetID: appConfig.GoogleSpreadsheetID,
		GoogleSheetName:     appConfig.GoogleSheetName,
	}, nil
}

// Validate validates the sink configuration
func (c Config) Validate() error {
	if len(c.Types) == 0 {
		return fmt.Errorf("no sink types configured")
	}

	for _, t := range c.Types {
		if !t.IsValid() {
			return fmt.Errorf("invalid sink type: %s", t)
		}

		switch t {
		case CSVSink:
			if c.OutputPath == "" {
				return fmt.Errorf("output path is required for the csv sink")
			}

		case SQLiteSink:
			if c.SQLiteDBPath == "" {
				return fmt.Errorf("SQLite database path is required for the sqlite sink")
			}

		case AMQPSink:
			if c.AMQPURL == "" {
				return fmt.Errorf("AMQP URL is required for the amqp sink")
			}
			if c.AMQPExchange == "" || c.AMQPQueue == "" {
				return fmt.Errorf("AMQP exchange and queue names are required for the amqp sink")
			}

		case SheetsSink:
			if c.GoogleSpreadsheetID == "" {
				return fmt.Errorf("Google Spreadsheet ID is required for the sheets sink")
			}

		case MemorySink:
			// Memory sink doesn't require additional validation
		}
	}

	return nil
}
