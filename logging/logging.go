// Package logging configura el logger global (log/slog) con salida coloreada de tint.
//
// Variables de entorno:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup configura el logger con el nivel indicado en LOG_LEVEL
func Setup() {
	SetupWithLevel(LevelFromString(os.Getenv("LOG_LEVEL")))
}

// SetupWithLevel configura el logger con un nivel explícito
func SetupWithLevel(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.DateTime,
		}),
	))
}

func LevelFromString(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
