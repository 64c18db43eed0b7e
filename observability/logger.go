// Package observability carries the logging and tracing hooks used by promptai.
package observability

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
)

const (
	// ErrorLogField is the key used for error fields in logs
	ErrorLogField string = "error"
)

// Fields are structured key/value pairs attached to log entries.
type Fields map[string]interface{}

// Logger interface - defines the common logging methods
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})

	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})

	WithFields(fields Fields) Logger
	WithContext(ctx context.Context) Logger
	WithErr(err error) Logger
}

// DefaultLogger writes through Go's standard log package with fields rendered as a prefix.
type DefaultLogger struct {
	logger *log.Logger
	fields Fields
	err    error
}

// NewDefaultLogger creates a new DefaultLogger that logs to standard output
func NewDefaultLogger() Logger {
	return NewDefaultLoggerWith(log.New(os.Stdout, "", log.LstdFlags))
}

// NewDefaultLoggerWith creates a DefaultLogger writing to l.
func NewDefaultLoggerWith(l *log.Logger) Logger {
	return &DefaultLogger{logger: l, fields: Fields{}}
}

func (l *DefaultLogger) Debugf(format string, args ...interface{}) {
	l.output("DEBUG", fmt.Sprintf(format, args...))
}
func (l *DefaultLogger) Infof(format string, args ...interface{}) {
	l.output("INFO", fmt.Sprintf(format, args...))
}
func (l *DefaultLogger) Warnf(format string, args ...interface{}) {
	l.output("WARN", fmt.Sprintf(format, args...))
}
func (l *DefaultLogger) Errorf(format string, args ...interface{}) {
	l.output("ERROR", fmt.Sprintf(format, args...))
}

func (l *DefaultLogger) Debug(args ...interface{}) { l.output("DEBUG", fmt.Sprint(args...)) }
func (l *DefaultLogger) Info(args ...interface{})  { l.output("INFO", fmt.Sprint(args...)) }
func (l *DefaultLogger) Warn(args ...interface{})  { l.output("WARN", fmt.Sprint(args...)) }
func (l *DefaultLogger) Error(args ...interface{}) { l.output("ERROR", fmt.Sprint(args...)) }

// WithFields returns a logger carrying fields on top of the existing ones.
func (l *DefaultLogger) WithFields(fields Fields) Logger {
	merged := make(Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &DefaultLogger{logger: l.logger, fields: merged, err: l.err}
}

// WithContext - No-op for DefaultLogger. Returns itself.
func (l *DefaultLogger) WithContext(context.Context) Logger {
	return l
}

// WithErr returns a logger that appends err to every entry.
func (l *DefaultLogger) WithErr(err error) Logger {
	return &DefaultLogger{logger: l.logger, fields: l.fields, err: err}
}

// output renders "[k=v ...] [LEVEL] msg" with keys sorted.
func (l *DefaultLogger) output(level, msg string) {
	keys := make([]string, 0, len(l.fields))
	for k := range l.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, l.fields[k]))
	}
	if l.err != nil {
		parts = append(parts, fmt.Sprintf("%s=%v", ErrorLogField, l.err))
	}

	prefix := ""
	if len(parts) > 0 {
		prefix = "[" + strings.Join(parts, " ") + "] "
	}
	l.logger.Printf("%s[%s] %s", prefix, level, msg)
}

// NullLogger - a logger that does nothing
type NullLogger struct{}

// NewNullLogger creates a new NullLogger
func NewNullLogger() Logger {
	return &NullLogger{}
}

func (l *NullLogger) Debugf(string, ...interface{}) {}
func (l *NullLogger) Infof(string, ...interface{})  {}
func (l *NullLogger) Warnf(string, ...interface{})  {}
func (l *NullLogger) Errorf(string, ...interface{}) {}

func (l *NullLogger) Debug(...interface{}) {}
func (l *NullLogger) Info(...interface{})  {}
func (l *NullLogger) Warn(...interface{})  {}
func (l *NullLogger) Error(...interface{}) {}

func (l *NullLogger) WithFields(Fields) Logger           { return l }
func (l *NullLogger) WithContext(context.Context) Logger { return l }
func (l *NullLogger) WithErr(error) Logger               { return l }
