package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger at the given level. An unknown level falls
// back to warn so that debug output stays out of interactive sessions.
func New(level string, out io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
