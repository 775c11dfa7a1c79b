package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var log = slog.New(slog.NewTextHandler(os.Stdout, nil))

var level = new(slog.LevelVar)

// Init configures the process-wide logger. Production environments log JSON,
// everything else logs human readable text. LOG_LEVEL overrides the level.
func Init(env string) {
	level.Set(slog.LevelInfo)
	if strings.ToLower(env) == "development" {
		level.Set(slog.LevelDebug)
	}
	if lvl, ok := ParseLevel(os.Getenv("LOG_LEVEL")); ok {
		level.Set(lvl)
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if strings.ToLower(env) == "production" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	log = slog.New(h)
	slog.SetDefault(log)
}

// SetOutput sends text logs to w at the current level.
func SetOutput(w io.Writer) {
	log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel maps DEBUG/INFO/WARN/ERROR to a slog level.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

func Debug(msg string, args ...any) {
	log.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	log.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	log.Error(msg, args...)
}

// Fatal logs at error level and exits the process.
func Fatal(msg string, args ...any) {
	log.Error(msg, args...)
	os.Exit(1)
}

// With returns a child logger carrying the given attributes.
func With(args ...any) *slog.Logger {
	return log.With(args...)
}
