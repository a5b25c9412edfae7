// Package logger provides named, colour-prefixed structured loggers.
package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/beka-birhanu/amazeing/config"
)

// Logger writes leveled messages with key/value attributes.
type Logger struct {
	slog *slog.Logger
}

// prefixWriter starts every record with the raw, possibly coloured, tag.
// slog handlers emit one Write per record.
type prefixWriter struct {
	tag []byte
	w   io.Writer
}

func (p *prefixWriter) Write(b []byte) (int, error) {
	line := make([]byte, 0, len(p.tag)+len(b))
	line = append(line, p.tag...)
	line = append(line, b...)
	if _, err := p.w.Write(line); err != nil {
		return 0, err
	}
	return len(b), nil
}

// New creates a logger whose lines are tagged with name in the given ANSI
// color.
func New(name, color string, w io.Writer) (*Logger, error) {
	if name == "" {
		return nil, errors.New("logger name is required")
	}
	if w == nil {
		return nil, errors.New("logger writer is required")
	}
	tag := "[" + name + "] "
	if color != "" {
		tag = color + "[" + name + "]" + config.ColorReset + " "
	}
	handler := slog.NewTextHandler(&prefixWriter{tag: []byte(tag), w: w}, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &Logger{
		slog: slog.New(handler).With("component", name),
	}, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	l, _ := New("DISCARD", "", io.Discard)
	return l
}

// Info logs at info level.
func (l *Logger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, msg, args...)
}

// Error logs at error level.
func (l *Logger) Error(msg string, args ...any) {
	l.log(slog.LevelError, msg, args...)
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, msg, args...)
}

func (l *Logger) log(level slog.Level, msg string, args ...any) {
	if l == nil {
		return
	}
	l.slog.Log(context.Background(), level, msg, args...)
}
