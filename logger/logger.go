package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

type Logger interface {
	Info(msg string, keyvals ...interface{})

	Warn(msg string, keyvals ...interface{})

	Error(msg string, keyvals ...interface{})

	Debug(msg string, keyvals ...interface{})
}

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

type Options struct {
	Level  string // debug, info, warn or error
	Format string // json or console
	Output io.Writer
}

func New() Logger {
	return NewWithOptions(Options{Level: "debug", Format: FormatJSON})
}

// NewWithOptions builds an slog logger writing JSON, or human readable lines
// through charmbracelet/log when Format is console.
func NewWithOptions(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	level := ParseLevel(opts.Level)

	if strings.EqualFold(opts.Format, FormatConsole) {
		handler := charmlog.NewWithOptions(out, charmlog.Options{
			Level:           charmlog.Level(level),
			ReportTimestamp: true,
			ReportCaller:    true,
		})
		return slog.New(handler)
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: true, // include file + line number
	})
	return slog.New(handler)
}

// Discard returns a logger that drops everything.
func Discard() Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// ParseLevel maps a config value to a level, falling back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
