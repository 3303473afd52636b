// internal/logger/logger.go
package logger

import (
	"io"
	"log/slog"
	"os"

	"go-waypoint-defense/internal/config"
)

// New создаёт структурированный логгер по настройкам.
// format: "json" или "text"; неизвестный уровень заменяется на info.
func New(s *config.Settings, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level, err := config.ParseLogLevel(s.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	}
	var handler slog.Handler
	if s.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Discard — логгер для тестов, который ничего не пишет.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
