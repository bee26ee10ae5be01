package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// SlogLogger provides structured logging using slog
type SlogLogger struct {
	logger    *slog.Logger
	component string
}

// NewSlogLogger creates a new slog-backed logger writing to w at the given level
func NewSlogLogger(component string, w io.Writer, level LogLevel) *SlogLogger {
	return &SlogLogger{
		logger:    slog.New(createHandler(w, level)),
		component: component,
	}
}

// createHandler picks a text or JSON handler based on EBWAIT_LOG_FORMAT
func createHandler(w io.Writer, level LogLevel) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:       toSlogLevel(level),
		ReplaceAttr: replaceAttr,
	}

	if strings.ToUpper(os.Getenv("EBWAIT_LOG_FORMAT")) == "JSON" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func toSlogLevel(level LogLevel) slog.Level {
	switch level {
	case TRACE, DEBUG:
		return slog.LevelDebug
	case WARN:
		return slog.LevelWarn
	case ERROR:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// replaceAttr keeps level names uppercase and drops the timestamp when running
// under GitHub Actions, where the runner already prefixes each line with one
func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && os.Getenv("GITHUB_ACTIONS") == "true" {
		return slog.Attr{}
	}
	if a.Key == slog.LevelKey {
		if level, ok := a.Value.Any().(slog.Level); ok {
			return slog.Attr{Key: a.Key, Value: slog.StringValue(strings.ToUpper(level.String()))}
		}
	}
	return a
}

// Debug logs a debug-level message
func (l *SlogLogger) Debug(msg string) {
	l.logger.Debug(msg, "component", l.component)
}

// Info logs an info-level message
func (l *SlogLogger) Info(msg string) {
	l.logger.Info(msg, "component", l.component)
}

// Warn logs a warning-level message
func (l *SlogLogger) Warn(msg string) {
	l.logger.Warn(msg, "component", l.component)
}

// Error logs an error-level message
func (l *SlogLogger) Error(msg string) {
	l.logger.Error(msg, "component", l.component)
}

// Operation logs an operation with structured data
func (l *SlogLogger) Operation(ctx context.Context, operation string, details map[string]interface{}) {
	args := []interface{}{"component", l.component, "operation", operation}
	for k, v := range details {
		args = append(args, k, v)
	}
	l.logger.DebugContext(ctx, "Operation", args...)
}

// Success logs a successful operation
func (l *SlogLogger) Success(ctx context.Context, operation string, details ...interface{}) {
	args := []interface{}{"component", l.component, "operation", operation, "status", "success"}
	if len(details) > 0 {
		args = append(args, "details", details[0])
	}
	l.logger.InfoContext(ctx, "Operation completed successfully", args...)
}

// Failure logs a failed operation
func (l *SlogLogger) Failure(ctx context.Context, operation string, err error) {
	l.logger.ErrorContext(ctx, "Operation failed",
		"component", l.component,
		"operation", operation,
		"status", "failed",
		"error", err)
}
