package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// LogLevel represents the severity of a log message
type LogLevel int

// LogLevel constants represent the various log levels
const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

const (
	logLevelTrace = "TRACE"
	logLevelDebug = "DEBUG"
	logLevelInfo  = "INFO"
	logLevelWarn  = "WARN"
	logLevelError = "ERROR"
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case TRACE:
		return logLevelTrace
	case DEBUG:
		return logLevelDebug
	case INFO:
		return logLevelInfo
	case WARN:
		return logLevelWarn
	case ERROR:
		return logLevelError
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name into a LogLevel, defaulting to INFO
func ParseLevel(name string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case logLevelTrace:
		return TRACE
	case logLevelDebug:
		return DEBUG
	case logLevelInfo:
		return INFO
	case logLevelWarn, "WARNING":
		return WARN
	case logLevelError:
		return ERROR
	default:
		return INFO
	}
}

// Logger provides leveled, printf-style logging on top of a structured slog backend
type Logger struct {
	component  string
	level      LogLevel
	slogLogger *SlogLogger
}

// NewLogger creates a new logger for a specific component writing to stderr
func NewLogger(component string) *Logger {
	return NewLoggerWithWriter(component, os.Stderr)
}

// NewLoggerWithWriter creates a logger for a component that writes to w
func NewLoggerWithWriter(component string, w io.Writer) *Logger {
	level := getLogLevel()
	return &Logger{
		component:  component,
		level:      level,
		slogLogger: NewSlogLogger(component, w, level),
	}
}

// getLogLevel determines the current log level from environment.
// RUNNER_DEBUG is set by GitHub Actions when a job is re-run with debug logging.
func getLogLevel() LogLevel {
	if os.Getenv("RUNNER_DEBUG") == "1" {
		return DEBUG
	}
	return ParseLevel(os.Getenv("EBWAIT_LOG_LEVEL"))
}

func (l *Logger) logf(level LogLevel, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	msg := fmt.Sprintf(format, args...)
	switch level {
	case TRACE, DEBUG:
		l.slogLogger.Debug(msg)
	case INFO:
		l.slogLogger.Info(msg)
	case WARN:
		l.slogLogger.Warn(msg)
	case ERROR:
		l.slogLogger.Error(msg)
	}
}

// Trace logs a trace-level message
func (l *Logger) Trace(format string, args ...interface{}) {
	l.logf(TRACE, format, args...)
}

// Debug logs a debug-level message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(DEBUG, format, args...)
}

// Info logs an info-level message
func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(INFO, format, args...)
}

// Warn logs a warning-level message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(WARN, format, args...)
}

// Error logs an error-level message
func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(ERROR, format, args...)
}

// IsDebugEnabled returns true if debug logging is enabled
func (l *Logger) IsDebugEnabled() bool {
	return l.level <= DEBUG
}

// Operation logs an operation with structured data at debug level
func (l *Logger) Operation(ctx context.Context, operation string, details map[string]interface{}) {
	if !l.IsDebugEnabled() {
		return
	}
	l.slogLogger.Operation(ctx, operation, details)
}

// Success logs a successful operation
func (l *Logger) Success(ctx context.Context, operation string, details ...interface{}) {
	if l.level > INFO {
		return
	}
	l.slogLogger.Success(ctx, operation, details...)
}

// Failure logs a failed operation
func (l *Logger) Failure(ctx context.Context, operation string, err error) {
	l.slogLogger.Failure(ctx, operation, err)
}
