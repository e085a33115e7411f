// Package log provides category-tagged structured logging for menukit.
// It wraps a slog JSON handler and is enabled via --verbose or the
// MENUKIT_DEBUG environment variable; when disabled, calls are no-ops.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Category groups related log messages.
type Category string

const (
	CatConfig     Category = "config"     // Configuration loading/saving
	CatDefinition Category = "definition" // Menu definition parsing
	CatRender     Category = "render"     // Menu rendering
	CatWatch      Category = "watch"      // File watcher events
)

var (
	mu      sync.Mutex
	logger  *slog.Logger
	enabled bool
)

// Init configures the global logger to write JSON records to w at the given
// level ("debug", "info", "warn", "error").
func Init(w io.Writer, level string) {
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
	enabled = true
}

// InitStderr configures the global logger to write to stderr.
func InitStderr(level string) {
	Init(os.Stderr, level)
}

// SetEnabled toggles logging on/off.
func SetEnabled(on bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = on
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	log(slog.LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	log(slog.LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	log(slog.LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	log(slog.LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value attached.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	log(slog.LevelError, cat, msg, fields...)
}

func log(level slog.Level, cat Category, msg string, fields ...any) {
	mu.Lock()
	l, on := logger, enabled
	mu.Unlock()
	if l == nil || !on {
		return
	}

	args := make([]any, 0, len(fields)+2)
	args = append(args, "category", string(cat))
	args = append(args, fields...)
	l.Log(context.Background(), level, msg, args...)
}
