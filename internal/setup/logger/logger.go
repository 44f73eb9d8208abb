package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the structured logger used by the long-running workers. Writes
// to stderr so stdout stays free for protocol traffic (the MCP transport).
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(os.Stderr).
		Level(lvl).
		With().
		Timestamp().
		Caller().
		Logger()
}
