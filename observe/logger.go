package observe

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// logLevel represents logging severity.
type logLevel int

const (
	levelDebug logLevel = iota
	levelInfo
	levelWarn
	levelError
)

func parseLevel(s string) logLevel {
	switch s {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func (l logLevel) String() string {
	switch l {
	case levelDebug:
		return "debug"
	case levelWarn:
		return "warn"
	case levelError:
		return "error"
	default:
		return "info"
	}
}

// jsonLogger writes structured JSON log entries to a writer. Entries carry
// the trace and span IDs of the active span so logs can be correlated with
// traces.
type jsonLogger struct {
	mu    sync.Mutex
	w     io.Writer
	level logLevel
	base  []Field
}

// NewLogger creates a JSON logger writing to stderr at the given level.
func NewLogger(level string) Logger {
	return &jsonLogger{
		w:     os.Stderr,
		level: parseLevel(level),
	}
}

// NewLoggerWithWriter creates a JSON logger writing to w at the given level.
func NewLoggerWithWriter(w io.Writer, level string) Logger {
	return &jsonLogger{
		w:     w,
		level: parseLevel(level),
	}
}

type logEntry struct {
	Time    string         `json:"time"`
	Level   string         `json:"level"`
	Message string         `json:"msg"`
	TraceID string         `json:"trace_id,omitempty"`
	SpanID  string         `json:"span_id,omitempty"`
	Fields  map[string]any `json:"fields,omitempty"`
}

func (l *jsonLogger) log(ctx context.Context, level logLevel, msg string, fields []Field) {
	if level < l.level {
		return
	}

	entry := logEntry{
		Time:    time.Now().UTC().Format(time.RFC3339Nano),
		Level:   level.String(),
		Message: msg,
	}

	// Correlate with the active span when one exists.
	if span := trace.SpanFromContext(ctx); span.SpanContext().IsValid() {
		entry.TraceID = span.SpanContext().TraceID().String()
		entry.SpanID = span.SpanContext().SpanID().String()
	}

	if len(l.base) > 0 || len(fields) > 0 {
		entry.Fields = make(map[string]any, len(l.base)+len(fields))
		for _, f := range l.base {
			entry.Fields[f.Key] = f.Value
		}
		for _, f := range fields {
			entry.Fields[f.Key] = f.Value
		}
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	data = append(data, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.w.Write(data)
}

func (l *jsonLogger) Info(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, levelInfo, msg, fields)
}

func (l *jsonLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, levelWarn, msg, fields)
}

func (l *jsonLogger) Error(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, levelError, msg, fields)
}

func (l *jsonLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, levelDebug, msg, fields)
}

func (l *jsonLogger) With(fields ...Field) Logger {
	base := make([]Field, 0, len(l.base)+len(fields))
	base = append(base, l.base...)
	base = append(base, fields...)
	return &jsonLogger{
		w:     l.w,
		level: l.level,
		base:  base,
	}
}

var _ Logger = (*jsonLogger)(nil)

// String returns a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int returns an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Duration returns a duration field rendered in milliseconds.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: float64(value.Microseconds()) / 1000.0}
}

// Err returns an error field. A nil error yields an empty string.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: ""}
	}
	return Field{Key: "error", Value: err.Error()}
}
