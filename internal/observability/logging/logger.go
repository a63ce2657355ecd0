package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"jyotish/internal/handler/http/requestid"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls handler construction.
type Options struct {
	Level  slog.Level
	Format string // "json" or "text"
	// File, when set, receives output through lumberjack rotation.
	File       string
	MaxSizeMB  int
	MaxAgeDays int
}

// OptionsFromEnv reads LOG_LEVEL, LOG_FORMAT, and LOG_FILE.
func OptionsFromEnv() Options {
	return Options{
		Level:      ParseLevel(os.Getenv("LOG_LEVEL")),
		Format:     strings.ToLower(os.Getenv("LOG_FORMAT")),
		File:       os.Getenv("LOG_FILE"),
		MaxSizeMB:  100,
		MaxAgeDays: 14,
	}
}

// ParseLevel maps debug, info, warn, and error onto slog levels.
// Anything else is info.
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

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger for opts and the closer of its output.
func New(opts Options) (*slog.Logger, io.Closer) {
	var (
		out    io.Writer = os.Stdout
		closer io.Closer = nopCloser{}
	)
	if opts.File != "" {
		lj := &lumberjack.Logger{
			Filename: opts.File,
			MaxSize:  opts.MaxSizeMB,
			MaxAge:   opts.MaxAgeDays,
			Compress: true,
		}
		out, closer = lj, lj
	}
	return slog.New(NewHandler(out, opts)), closer
}

// NewHandler builds the slog handler for opts writing to w.
func NewHandler(w io.Writer, opts Options) slog.Handler {
	ho := &slog.HandlerOptions{
		Level:     opts.Level,
		AddSource: opts.Level <= slog.LevelDebug,
	}
	if opts.Format == "text" {
		return slog.NewTextHandler(w, ho)
	}
	return slog.NewJSONHandler(w, ho)
}

// NewLogger creates a JSON logger on stdout honoring LOG_LEVEL.
func NewLogger() *slog.Logger {
	opts := OptionsFromEnv()
	opts.File = ""
	opts.Format = "json"
	logger, _ := New(opts)
	return logger
}

// WithRequestID returns a logger that includes the request ID from ctx.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		return logger
	}
	return logger.With("request_id", reqID)
}

// FromContext retrieves the logger from ctx, or the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

type contextKey string

const loggerContextKey contextKey = "logger"
