// Copyright (c) 2025 Identikit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the application debug logger. User-facing output goes through
// pterm; this logger carries diagnostic events (one per wire request) and is
// silent unless the configured level enables it.
var Logger = zerolog.New(io.Discard)

// maskWriter masks secrets before they reach the underlying writer.
type maskWriter struct {
	w io.Writer
}

func (m maskWriter) Write(p []byte) (int, error) {
	if _, err := m.w.Write([]byte(Mask(string(p)))); err != nil {
		return 0, err
	}
	// Report the original length so zerolog does not see a short write.
	return len(p), nil
}

// Init configures the debug logger with the given level. Output is console
// formatted on stderr, filtered through Mask so credentials never land in a
// terminal scrollback verbatim.
func Init(level string) {
	out := zerolog.ConsoleWriter{
		Out:        maskWriter{w: os.Stderr},
		TimeFormat: "15:04:05",
	}
	Logger = zerolog.New(out).Level(parseLevel(level)).With().Timestamp().Logger()
}

// parseLevel parses a string log level to a zerolog level.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
