// Package log provides the component-tagged slog wrapper used by the
// salesgen binary.
package log

import (
	"log/slog"
	"os"
)

// Logger tags every entry with the component that emitted it.
type Logger struct {
	*slog.Logger
	handler   slog.Handler
	component string
}

// Config holds logger configuration.
type Config struct {
	Level     slog.Level
	Component string
	Handler   slog.Handler
}

// DefaultConfig returns sensible defaults for logging.
func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelInfo,
		Component: ComponentApp,
	}
}

// New creates a new logger with the given configuration.
func New(config Config) *Logger {
	handler := config.Handler
	if handler == nil {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: config.Level,
		})
	}

	return &Logger{
		Logger:    slog.New(handler).With(FieldComponent, config.Component),
		handler:   handler,
		component: config.Component,
	}
}

// WithComponent returns a logger tagged with a specific component name.
// The tag is baked into the embedded slog.Logger so it survives being
// passed to code that only knows *slog.Logger.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    slog.New(l.handler).With(FieldComponent, component),
		handler:   l.handler,
		component: component,
	}
}

// SetDefault installs the logger's handler as the process-wide slog default.
// Packages that log through slog.Default share the handler without
// inheriting this logger's component tag.
func SetDefault(logger *Logger) {
	slog.SetDefault(slog.New(logger.handler))
}

// Component returns the logger's component name.
func (l *Logger) Component() string {
	return l.component
}
