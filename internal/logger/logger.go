package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Logger provides structured logging tagged with the emitting component
type Logger interface {
	Info(component string, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Debug(component string, message string, fields map[string]interface{})
}

// With scopes log with fields when it supports child loggers, otherwise it
// returns log unchanged.
func With(log Logger, fields map[string]interface{}) Logger {
	if scoped, ok := log.(interface {
		With(map[string]interface{}) Logger
	}); ok {
		return scoped.With(fields)
	}
	return log
}

// ParseLevel maps a config level name to a zerolog level
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// New builds the application logger. JSON output writes one object per line;
// otherwise a human readable console format is used.
func New(writer io.Writer, level zerolog.Level, useJSON bool) *ZerologAdapter {
	if useJSON {
		return NewZerolog(writer, level)
	}
	return NewZerolog(zerolog.ConsoleWriter{Out: writer, TimeFormat: "15:04:05"}, level)
}

// NoOpLogger discards everything
type NoOpLogger struct{}

func (n NoOpLogger) Info(component string, message string, fields map[string]interface{})    {}
func (n NoOpLogger) Error(component string, err error, fields map[string]interface{})        {}
func (n NoOpLogger) Warning(component string, message string, fields map[string]interface{}) {}
func (n NoOpLogger) Debug(component string, message string, fields map[string]interface{})   {}
