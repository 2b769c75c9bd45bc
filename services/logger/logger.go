package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level defines the logging levels
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// Logger is the printf-style logger handed to services and jobs
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// New returns a zerolog Logger. env "dev" (or "development") uses a console writer.
func New(env string, level Level) zerolog.Logger {
	var out io.Writer = os.Stdout
	if env == "dev" || env == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level.zerolog()).With().Timestamp().Logger()
}

// ParseLevel maps "debug", "info" and "error" to a Level, defaulting to InfoLevel.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return DebugLevel
	case "error":
		return ErrorLevel
	}
	return InfoLevel
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case DebugLevel:
		return zerolog.DebugLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	}
	return zerolog.InfoLevel
}

// ZerologLogger implements Logger on top of a zerolog.Logger
type ZerologLogger struct {
	l zerolog.Logger
}

func NewZerologLogger(l zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{l: l}
}

// Nop discards everything; handy in tests
func Nop() *ZerologLogger {
	return &ZerologLogger{l: zerolog.Nop()}
}

func (z *ZerologLogger) Info(format string, v ...interface{}) {
	z.l.Info().Msgf(format, v...)
}

func (z *ZerologLogger) Error(format string, v ...interface{}) {
	z.l.Error().Msgf(format, v...)
}

func (z *ZerologLogger) Debug(format string, v ...interface{}) {
	z.l.Debug().Msgf(format, v...)
}

// Zerolog exposes the underlying logger for structured fields
func (z *ZerologLogger) Zerolog() zerolog.Logger {
	return z.l
}
