package logger

import (
	"context"
	"io"
	stdlog "log"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"
	FieldService   = "service"
	FieldComponent = "component"
)

// Config holds logger configuration.
type Config struct {
	Level       string
	Format      string // json or text
	ServiceName string
}

var global = zerolog.New(os.Stdout).With().Timestamp().Logger()

// New creates a configured zerolog.Logger writing to w.
func New(cfg Config, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stdout
	}
	if cfg.Format == "text" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	logger := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
	if cfg.ServiceName != "" {
		logger = logger.With().Str(FieldService, cfg.ServiceName).Logger()
	}
	return logger
}

// Init builds the process logger and bridges the stdlib log package to it,
// so log.Printf calls from dependencies come out structured.
func Init(cfg Config) zerolog.Logger {
	global = New(cfg, os.Stdout)

	stdlog.SetFlags(0)
	stdlog.SetOutput(global.With().Str("source", "stdlog").Logger())
	return global
}

// L returns the process logger.
func L() zerolog.Logger {
	return global
}

type ctxKey struct{}

// WithLogger stores a logger in the context.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, if any.
func FromContext(ctx context.Context) (zerolog.Logger, bool) {
	l, ok := ctx.Value(ctxKey{}).(zerolog.Logger)
	return l, ok
}

// Ctx retrieves the request logger, falling back to the process logger.
func Ctx(ctx context.Context) zerolog.Logger {
	if l, ok := FromContext(ctx); ok {
		return l
	}
	return L()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}
