// Package log provides a leveled logger built on log/slog.
// The log messages are intended to be user-facing,
// similar to the standard library's log package.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Level specifies the level of logging.
type Level = slog.Level

// Supported log levels.
const (
	Debug = slog.LevelDebug
	Info  = slog.LevelInfo
	Error = slog.LevelError
)

// Logger logs messages to an io.Writer.
//
// Its embedded slog.Logger accepts structured key-value pairs.
// The Debugf, Infof, and Errorf methods accept printf-style arguments.
type Logger struct {
	*slog.Logger

	h *handler
}

// New builds a logger that writes to the given writer.
// The logger defaults to level Info.
func New(w io.Writer) *Logger {
	return newLogger(&handler{
		W:     w,
		Level: Info,
		mu:    new(sync.Mutex),
	})
}

func newLogger(h *handler) *Logger {
	return &Logger{Logger: slog.New(h), h: h}
}

// Level reports the minimum level of messages written by this logger.
func (l *Logger) Level() Level { return l.h.Level }

// WithLevel builds a copy of this logger that writes messages
// at or above the given level.
func (l *Logger) WithLevel(lvl Level) *Logger {
	h := *l.h
	h.Level = lvl
	return newLogger(&h)
}

// WithName builds a new logger with the provided name.
// Names are nested with a '.' if the logger already has a name.
// The returned logger is safe to use concurrently with this logger.
func (l *Logger) WithName(name string) *Logger {
	h := *l.h
	if len(h.name) > 0 {
		h.name += "."
	}
	h.name += name
	return newLogger(&h)
}

// Debugf logs a formatted message at Debug level.
func (l *Logger) Debugf(msg string, args ...any) { l.logf(Debug, msg, args...) }

// Infof logs a formatted message at Info level.
func (l *Logger) Infof(msg string, args ...any) { l.logf(Info, msg, args...) }

// Errorf logs a formatted message at Error level.
func (l *Logger) Errorf(msg string, args ...any) { l.logf(Error, msg, args...) }

func (l *Logger) logf(lvl Level, msg string, args ...any) {
	ctx := context.Background()
	if !l.Enabled(ctx, lvl) {
		return
	}

	msg = fmt.Sprintf(msg, args...)
	l.Log(ctx, lvl, strings.TrimRight(msg, "\n"))
}

// OmitEmpty builds an attribute with fn unless value is the zero value
// for its type, in which case the attribute is dropped from the record.
//
//	log.Info("wrote output", log.OmitEmpty(slog.String, "chart", path))
func OmitEmpty[T comparable](fn func(string, T) slog.Attr, name string, value T) slog.Attr {
	var zero T
	if value == zero {
		return slog.Attr{}
	}
	return fn(name, value)
}
