package common

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Logger provides structured logging for query handling.
type Logger interface {
	Log(level, message string, metadata map[string]interface{})
}

type contextKey int

const loggerKey contextKey = iota

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a no-op
// logger if not found.
func LoggerFromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerKey).(Logger); ok {
		return logger
	}
	return &noOpLogger{}
}

type noOpLogger struct{}

func (l *noOpLogger) Log(level, message string, metadata map[string]interface{}) {}

// writerLogger writes timestamped lines to an io.Writer. The CLI installs
// one on stderr when --verbose is set.
type writerLogger struct {
	out io.Writer
}

// NewWriterLogger creates a logger writing to the given writer.
func NewWriterLogger(out io.Writer) Logger {
	return &writerLogger{out: out}
}

func (l *writerLogger) Log(level, message string, metadata map[string]interface{}) {
	if len(metadata) > 0 {
		fmt.Fprintf(l.out, "%s [%s] %s %v\n", time.Now().Format(time.RFC3339), level, message, metadata)
		return
	}
	fmt.Fprintf(l.out, "%s [%s] %s\n", time.Now().Format(time.RFC3339), level, message)
}
