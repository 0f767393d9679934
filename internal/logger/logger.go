package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds the process logger. The effective level is the global level set
// from configuration.
func New() zerolog.Logger {
	return NewWithWriter(os.Stdout)
}

func NewWithWriter(w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(w).
		With().
		Timestamp().
		Caller().
		Logger()

	logger = logger.Level(zerolog.DebugLevel)

	return logger
}
