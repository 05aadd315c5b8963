// Package logging builds the JSON line logger shared by the HTTP layer, the
// migration runner and the document services.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a logger writing one JSON object per line to w.
// Timestamps are RFC3339Nano in loc; unknown levels fall back to info.
func New(w io.Writer, loc *time.Location, level string) *log.Logger {
	if loc == nil {
		loc = time.UTC
	}
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		TimeFunction:    func(t time.Time) time.Time { return t.In(loc) },
		Formatter:       log.JSONFormatter,
		Level:           lvl,
	})
}

// Default writes to stdout at info level in UTC.
func Default() *log.Logger {
	return New(os.Stdout, time.UTC, "info")
}

// Discard drops everything; used by tests that do not inspect output.
func Discard() *log.Logger {
	return New(io.Discard, time.UTC, "debug")
}

// LoadLocation resolves name, falling back to UTC.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

type requestIDKey struct{}

// WithRequestID stores the request ID on ctx so logs written below the HTTP
// layer can be correlated with the access log line.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the ID stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// FromContext returns logger tagged with the request ID carried by ctx.
// Without one the logger is returned unchanged.
func FromContext(ctx context.Context, logger *log.Logger) *log.Logger {
	if id := RequestID(ctx); id != "" {
		return logger.With("request_id", id)
	}
	return logger
}
