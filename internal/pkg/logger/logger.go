// internal/pkg/logger/logger.go
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	taskIDKey
	requestInfoKey
)

// RequestInfo is attached by the access log middleware and printed with
// every record logged under the request.
type RequestInfo struct {
	ClientIP string
	Method   string
	Path     string
}

// Config holds logger configuration
type Config struct {
	Level          string
	Format         string // json, text, pretty
	File           string // optional second sink, always JSON
	AddSource      bool
	ServiceName    string
	ServiceVersion string
	Environment    string
}

// Setup builds the process logger and installs it as the slog default.
func Setup(cfg Config) *slog.Logger {
	l := New(cfg, os.Stdout)
	slog.SetDefault(l)
	return l
}

// New creates a logger writing to w, plus cfg.File when set. Records pass
// through context enrichment and redaction before any sink sees them.
func New(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(cfg.Level),
		AddSource: cfg.AddSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			return rewriteAttr(cfg.Format == "json", a)
		},
	}

	var sink slog.Handler
	switch cfg.Format {
	case "pretty":
		sink = newDevHandler(w, opts)
	case "text":
		sink = slog.NewTextHandler(w, opts)
	default:
		sink = slog.NewJSONHandler(w, opts)
	}

	if cfg.File != "" {
		if f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			sink = fanout{sink, slog.NewJSONHandler(f, opts)}
		}
	}

	var h slog.Handler = newRedactor(contextHandler{next: sink})

	var base []slog.Attr
	if cfg.ServiceName != "" {
		base = append(base, slog.String("service", cfg.ServiceName))
	}
	if cfg.ServiceVersion != "" {
		base = append(base, slog.String("version", cfg.ServiceVersion))
	}
	if cfg.Environment != "" {
		base = append(base, slog.String("env", cfg.Environment))
	}
	if len(base) > 0 {
		h = h.WithAttrs(base)
	}

	return slog.New(h)
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

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request id, if any.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithTaskID tags records logged while a background task runs.
func WithTaskID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, taskIDKey, id)
}

func WithRequestInfo(ctx context.Context, info RequestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey, info)
}

func RequestInfoFromContext(ctx context.Context) (RequestInfo, bool) {
	info, ok := ctx.Value(requestInfoKey).(RequestInfo)
	return info, ok
}

func contextAttrs(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr
	if id := RequestIDFromContext(ctx); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}
	if id, _ := ctx.Value(taskIDKey).(string); id != "" {
		attrs = append(attrs, slog.String("task_id", id))
	}
	if info, ok := RequestInfoFromContext(ctx); ok {
		attrs = append(attrs,
			slog.String("client_ip", info.ClientIP),
			slog.String("method", info.Method),
			slog.String("path", info.Path))
	}
	return attrs
}

func rewriteAttr(json bool, a slog.Attr) slog.Attr {
	switch {
	case a.Key == slog.TimeKey:
		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(t.UTC().Format(time.RFC3339Nano))
		}
	case a.Key == slog.LevelKey && json:
		a.Key = "severity"
	case strings.HasSuffix(a.Key, "_ms"):
		if d, ok := a.Value.Any().(time.Duration); ok {
			a.Value = slog.Float64Value(float64(d.Microseconds()) / 1000)
		}
	}
	return a
}
