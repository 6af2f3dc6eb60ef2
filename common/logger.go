package common

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLogLevel converts a level name into a zerolog level.
// Unknown names fall back to info.
//
// Parameters:
//   - level: one of trace, debug, info, warn, error (case-insensitive)
//
// Returns:
//   - zerolog.Level: the parsed level
func ParseLogLevel(level string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetupLogging configures the global zerolog level and builds the console logger
// shared by the engine components.
//
// Parameters:
//   - out: destination for log lines (usually os.Stdout)
//   - level: log level name, see ParseLogLevel
//
// Returns:
//   - zerolog.Logger: the configured logger
func SetupLogging(out io.Writer, level string) zerolog.Logger {
	zerolog.SetGlobalLevel(ParseLogLevel(level))
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	logger.Info().Str("loglevel", zerolog.GlobalLevel().String()).Msg("logging set up")
	return logger
}
