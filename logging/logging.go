// SPDX-License-Identifier: MIT
// Package: seqlath/logging
//
// logging.go — zerolog-backed structured logger for the harness and CLI.

// Package logging wraps zerolog with a small typed-field API. The
// extrapolation core never logs; only the evaluation harness and the CLI do.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrBadFormat indicates a format other than "json" or "console".
var ErrBadFormat = errors.New("logging: format must be json or console")

// Config selects level, format and destination.
type Config struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=trace debug info warn error disabled"`
	Format     string `yaml:"format" default:"console" validate:"oneof=json console"`
	Output     string `yaml:"output" default:"stderr" validate:"required"`
	TimeFormat string `yaml:"time_format"`
}

// Logger is a leveled structured logger. The zero value is not usable; use
// New, NewWriter or Nop.
type Logger struct {
	zl     zerolog.Logger
	closer io.Closer
}

// New builds a Logger from cfg. Output is "stdout", "stderr" or a file path
// opened for append.
func New(cfg Config) (*Logger, error) {
	var (
		w      io.Writer
		closer io.Closer
	)
	switch cfg.Output {
	case "", "stderr":
		w = os.Stderr
	case "stdout":
		w = os.Stdout
	default:
		f, err := os.OpenFile(cfg.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logging: open %s: %w", cfg.Output, err)
		}
		w, closer = f, f
	}

	l, err := NewWriter(w, cfg)
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, err
	}
	l.closer = closer

	return l, nil
}

// NewWriter builds a Logger writing to w; cfg.Output is ignored.
func NewWriter(w io.Writer, cfg Config) (*Logger, error) {
	lvl := zerolog.InfoLevel
	if cfg.Level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(strings.ToLower(cfg.Level)); err != nil {
			return nil, fmt.Errorf("logging: invalid level %q: %w", cfg.Level, err)
		}
	}
	tf := cfg.TimeFormat
	if tf == "" {
		tf = time.RFC3339
	}

	switch cfg.Format {
	case "", "json":
	case "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: tf}
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadFormat, cfg.Format)
	}

	zl := zerolog.New(w).Level(lvl).With().Timestamp().Logger()

	return &Logger{zl: zl}, nil
}

// Nop returns a Logger that discards everything.
func Nop() *Logger { return &Logger{zl: zerolog.Nop()} }

// OrNop returns l, or Nop when l is nil.
func OrNop(l *Logger) *Logger {
	if l == nil {
		return Nop()
	}

	return l
}

// Close releases the log file, if New opened one.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}

	return l.closer.Close()
}

// With returns a child Logger that stamps every event with fields.
func (l *Logger) With(fields ...Field) *Logger {
	ctx := l.zl.With()
	for _, f := range fields {
		ctx = f.context(ctx)
	}

	return &Logger{zl: ctx.Logger(), closer: l.closer}
}

func (l *Logger) Debug(msg string, fields ...Field) { emit(l.zl.Debug(), msg, fields) }
func (l *Logger) Info(msg string, fields ...Field)  { emit(l.zl.Info(), msg, fields) }
func (l *Logger) Warn(msg string, fields ...Field)  { emit(l.zl.Warn(), msg, fields) }
func (l *Logger) Error(msg string, fields ...Field) { emit(l.zl.Error(), msg, fields) }

func emit(ev *zerolog.Event, msg string, fields []Field) {
	if ev == nil {
		return
	}
	for _, f := range fields {
		f.add(ev)
	}
	ev.Msg(msg)
}
