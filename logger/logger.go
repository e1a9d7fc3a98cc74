// Package logger provides prefixed, colored component loggers backed by logrus.
package logger

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/beka-birhanu/vinom-maze/config"
)

var ErrEmptyPrefix = errors.New("logger prefix is required")

// Logger writes leveled messages tagged with a component prefix.
type Logger struct {
	entry *logrus.Entry
	tag   string
}

// New creates a logger that tags every line with prefix, painted with the given ANSI color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	base := logrus.New()
	base.SetOutput(w)
	base.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	return &Logger{
		entry: base.WithField("component", prefix),
		tag:   color + "[" + prefix + "]" + config.ColorReset + " ",
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.entry.Info(l.tag + msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.entry.Warn(l.tag + msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.entry.Error(l.tag + msg)
}

// With returns a logger that adds fields to every line.
func (l *Logger) With(fields map[string]any) *Logger {
	return &Logger{
		entry: l.entry.WithFields(logrus.Fields(fields)),
		tag:   l.tag,
	}
}
