// Package logging configures the process-wide zerolog setup.
package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds a component-scoped logger. Level comes from
// TALKBUDDY_LOG_LEVEL (default info); TALKBUDDY_LOG_FORMAT=json turns
// off the console writer.
func New(component string) zerolog.Logger {
	var w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	logger := zerolog.New(w).Level(parseLevel(os.Getenv("TALKBUDDY_LOG_LEVEL"))).
		With().Timestamp().Str("component", component).Logger()
	if strings.EqualFold(os.Getenv("TALKBUDDY_LOG_FORMAT"), "json") {
		logger = logger.Output(os.Stderr)
	}
	return logger
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "":
		return zerolog.InfoLevel
	default:
		return zerolog.InfoLevel
	}
}
