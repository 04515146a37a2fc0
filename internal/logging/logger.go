// Package logging provides a logrus-backed jsonbox.Logger.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/kuy/jsonbox-go/pkg/jsonbox"
)

const timestampFormat = "2006/01/02 15:04:05"

// Logger adapts a logrus.Logger to the structured jsonbox.Logger interface.
type Logger struct {
	*logrus.Logger
}

var _ jsonbox.Logger = (*Logger)(nil)

// Option configures a Logger.
type Option func(*Logger)

// WithOutput redirects log lines, stderr by default.
func WithOutput(out io.Writer) Option {
	return func(l *Logger) {
		l.SetOutput(out)
	}
}

// WithVerbose enables debug level.
func WithVerbose(verbose bool) Option {
	return func(l *Logger) {
		if verbose {
			l.SetLevel(logrus.DebugLevel)
		}
	}
}

// WithoutColors disables ANSI colors, e.g. when output is not a terminal.
func WithoutColors() Option {
	return func(l *Logger) {
		l.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: timestampFormat,
			FullTimestamp:   true,
			DisableColors:   true,
			DisableSorting:  true,
		})
	}
}

// New creates a Logger writing text lines at info level.
func New(opts ...Option) *Logger {
	logger := &Logger{Logger: logrus.New()}

	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: timestampFormat,
		FullTimestamp:   true,
		DisableSorting:  true,
	})

	for _, opt := range opts {
		opt(logger)
	}

	return logger
}

// Debug logs a debug message with fields.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message with fields.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning with fields.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error with fields.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.WithFields(logrus.Fields(fields)).Error(msg)
}

// IsDebugEnabled returns whether debug logging is enabled.
func (l *Logger) IsDebugEnabled() bool {
	return l.IsLevelEnabled(logrus.DebugLevel)
}
