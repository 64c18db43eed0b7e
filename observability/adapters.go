package observability

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// SlogLogger implements the Logger interface using the standard library's slog package
type SlogLogger struct {
	logger *slog.Logger
	ctx    context.Context
}

// NewSlogLogger creates a new SlogLogger with the provided slog.Logger
func NewSlogLogger(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger, ctx: context.Background()}
}

// Debugf logs a formatted debug message for SlogLogger
func (l *SlogLogger) Debugf(format string, args ...interface{}) {
	l.logger.DebugContext(l.ctx, fmt.Sprintf(format, args...))
}

// Infof logs a formatted info message for SlogLogger
func (l *SlogLogger) Infof(format string, args ...interface{}) {
	l.logger.InfoContext(l.ctx, fmt.Sprintf(format, args...))
}

// Warnf logs a formatted warning message for SlogLogger
func (l *SlogLogger) Warnf(format string, args ...interface{}) {
	l.logger.WarnContext(l.ctx, fmt.Sprintf(format, args...))
}

// Errorf logs a formatted error message for SlogLogger
func (l *SlogLogger) Errorf(format string, args ...interface{}) {
	l.logger.ErrorContext(l.ctx, fmt.Sprintf(format, args...))
}

// Debug log for SlogLogger
func (l *SlogLogger) Debug(args ...interface{}) { l.logger.DebugContext(l.ctx, fmt.Sprint(args...)) }

// Info log for SlogLogger
func (l *SlogLogger) Info(args ...interface{}) { l.logger.InfoContext(l.ctx, fmt.Sprint(args...)) }

// Warn log for SlogLogger
func (l *SlogLogger) Warn(args ...interface{}) { l.logger.WarnContext(l.ctx, fmt.Sprint(args...)) }

// Error log for SlogLogger
func (l *SlogLogger) Error(args ...interface{}) { l.logger.ErrorContext(l.ctx, fmt.Sprint(args...)) }

// WithFields adds fields to the logger and returns a new SlogLogger
func (l *SlogLogger) WithFields(fields Fields) Logger {
	attrs := make([]any, 0, len(fields))
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	return &SlogLogger{logger: l.logger.With(attrs...), ctx: l.ctx}
}

// WithContext passes ctx to the slog handler on every record.
func (l *SlogLogger) WithContext(ctx context.Context) Logger {
	return &SlogLogger{logger: l.logger, ctx: ctx}
}

// WithErr adds an error to the logger and returns a new SlogLogger
func (l *SlogLogger) WithErr(err error) Logger {
	return &SlogLogger{logger: l.logger.With(slog.Any(ErrorLogField, err)), ctx: l.ctx}
}

// LogrusLogger implements the Logger interface using logrus
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger creates a new LogrusLogger with the provided logrus.Logger
func NewLogrusLogger(logger *logrus.Logger) Logger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusLogger{entry: logrus.NewEntry(logger)}
}

// Debugf logs a formatted debug message for LogrusLogger
func (l *LogrusLogger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }

// Infof logs a formatted info message for LogrusLogger
func (l *LogrusLogger) Infof(format string, args ...interface{}) { l.entry.Infof(format, args...) }

// Warnf logs a formatted warning message for LogrusLogger
func (l *LogrusLogger) Warnf(format string, args ...interface{}) { l.entry.Warnf(format, args...) }

// Errorf logs a formatted error message for LogrusLogger
func (l *LogrusLogger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

// Debug log for LogrusLogger
func (l *LogrusLogger) Debug(args ...interface{}) { l.entry.Debug(args...) }

// Info log for LogrusLogger
func (l *LogrusLogger) Info(args ...interface{}) { l.entry.Info(args...) }

// Warn log for LogrusLogger
func (l *LogrusLogger) Warn(args ...interface{}) { l.entry.Warn(args...) }

// Error log for LogrusLogger
func (l *LogrusLogger) Error(args ...interface{}) { l.entry.Error(args...) }

// WithFields adds fields to the logger and returns a new LogrusLogger
func (l *LogrusLogger) WithFields(fields Fields) Logger {
	return &LogrusLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// WithContext adds context to the logger and returns a new LogrusLogger
func (l *LogrusLogger) WithContext(ctx context.Context) Logger {
	return &LogrusLogger{entry: l.entry.WithContext(ctx)}
}

// WithErr adds an error to the logger and returns a new LogrusLogger
func (l *LogrusLogger) WithErr(err error) Logger {
	return &LogrusLogger{entry: l.entry.WithError(err)}
}

// ZapLogger implements the Logger interface using uber-go/zap
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger creates a new ZapLogger with the provided zap.Logger. A nil logger
// falls back to zap's production configuration.
func NewZapLogger(logger *zap.Logger) Logger {
	if logger == nil {
		var err error
		if logger, err = zap.NewProduction(); err != nil {
			logger = zap.NewNop()
		}
	}
	return &ZapLogger{sugar: logger.Sugar()}
}

// Debugf logs a formatted debug message for ZapLogger
func (l *ZapLogger) Debugf(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }

// Infof logs a formatted info message for ZapLogger
func (l *ZapLogger) Infof(format string, args ...interface{}) { l.sugar.Infof(format, args...) }

// Warnf logs a formatted warning message for ZapLogger
func (l *ZapLogger) Warnf(format string, args ...interface{}) { l.sugar.Warnf(format, args...) }

// Errorf logs a formatted error message for ZapLogger
func (l *ZapLogger) Errorf(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }

// Debug log for ZapLogger
func (l *ZapLogger) Debug(args ...interface{}) { l.sugar.Debug(args...) }

// Info log for ZapLogger
func (l *ZapLogger) Info(args ...interface{}) { l.sugar.Info(args...) }

// Warn log for ZapLogger
func (l *ZapLogger) Warn(args ...interface{}) { l.sugar.Warn(args...) }

// Error log for ZapLogger
func (l *ZapLogger) Error(args ...interface{}) { l.sugar.Error(args...) }

// WithFields adds fields to the logger and returns a new ZapLogger
func (l *ZapLogger) WithFields(fields Fields) Logger {
	kv := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		kv = append(kv, k, v)
	}
	return &ZapLogger{sugar: l.sugar.With(kv...)}
}

// WithContext is a no-op for ZapLogger
func (l *ZapLogger) WithContext(context.Context) Logger {
	return l
}

// WithErr adds an error to the logger and returns a new ZapLogger
func (l *ZapLogger) WithErr(err error) Logger {
	return &ZapLogger{sugar: l.sugar.With(zap.Error(err))}
}
