// Package logging provides the structured logger shared by all services.
package logging

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Fields represents structured log fields
type Fields = logrus.Fields

// StructuredLogger wraps logrus with service identity fields so every
// entry carries the service name and version.
type StructuredLogger struct {
	logger *logrus.Logger
	entry  *logrus.Entry
}

// NewStructuredLogger creates a new structured logger. level is one of
// debug/info/warn/error; an unparseable level falls back to info.
// format selects "json" or "text" output.
func NewStructuredLogger(service, version, level, format string) *StructuredLogger {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	if format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &StructuredLogger{
		logger: l,
		entry: l.WithFields(logrus.Fields{
			"service": service,
			"version": version,
		}),
	}
}

// SetOutput sets the output destination for logs
func (l *StructuredLogger) SetOutput(w io.Writer) {
	l.logger.SetOutput(w)
}

// Debug logs a debug message with structured fields
func (l *StructuredLogger) Debug(ctx context.Context, message string, fields Fields) {
	l.entry.WithContext(ctx).WithFields(fields).Debug(message)
}

// Info logs an info message with structured fields
func (l *StructuredLogger) Info(ctx context.Context, message string, fields Fields) {
	l.entry.WithContext(ctx).WithFields(fields).Info(message)
}

// Warn logs a warning message with structured fields
func (l *StructuredLogger) Warn(ctx context.Context, message string, fields Fields) {
	l.entry.WithContext(ctx).WithFields(fields).Warn(message)
}

// Error logs an error message with structured fields and error details
func (l *StructuredLogger) Error(ctx context.Context, message string, fields Fields, err error) {
	l.entry.WithContext(ctx).WithFields(fields).WithError(err).Error(message)
}

// Fatal logs a fatal message and exits the program
func (l *StructuredLogger) Fatal(ctx context.Context, message string, fields Fields, err error) {
	l.entry.WithContext(ctx).WithFields(fields).WithError(err).Fatal(message)
}

// WithFields returns a logger that attaches fields to every entry.
func (l *StructuredLogger) WithFields(fields Fields) *StructuredLogger {
	return &StructuredLogger{
		logger: l.logger,
		entry:  l.entry.WithFields(fields),
	}
}
