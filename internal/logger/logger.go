package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger wraps zerolog.Logger
type Logger struct {
	zerolog.Logger
}

// New creates a new console logger with pretty output
func New() *Logger {
	logger := zerolog.New(consoleWriter()).
		With().
		Timestamp().
		Logger()

	return &Logger{logger}
}

// NewWithLevel creates a logger with specific level
func NewWithLevel(level string) *Logger {
	logger := zerolog.New(consoleWriter()).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()

	return &Logger{logger}
}

// consoleWriter builds the console writer, honoring NO_COLOR
func consoleWriter() zerolog.ConsoleWriter {
	_, noColor := os.LookupEnv("NO_COLOR")

	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
}

// parseLevel converts string to zerolog level
func parseLevel(level string) zerolog.Level {
	switch level {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger *Logger) {
	log.Logger = logger.Logger
}

// Global returns the global logger
func Global() *Logger {
	return &Logger{log.Logger}
}
