package logger

import (
	"os"
	"time"

	"github.com/mir-dating/backend/internal/config"
	"github.com/rs/zerolog"
)

// New builds the process-wide logger. It is constructed once at startup and
// handed to components explicitly instead of being reached through a global.
func New(cfg *config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Str("service", "mir-backend").
		Logger()
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
