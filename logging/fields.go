// SPDX-License-Identifier: MIT
// Package: seqlath/logging
//
// fields.go — typed structured-logging fields.

package logging

import (
	"time"

	"github.com/rs/zerolog"
)

// Field is a key/value pair attached to a log event or a child context.
type Field struct {
	key    string
	add    func(*zerolog.Event)
	attach func(zerolog.Context) zerolog.Context
}

func (f Field) context(c zerolog.Context) zerolog.Context { return f.attach(c) }

// String adds a string field.
func String(key, v string) Field {
	return Field{
		key:    key,
		add:    func(e *zerolog.Event) { e.Str(key, v) },
		attach: func(c zerolog.Context) zerolog.Context { return c.Str(key, v) },
	}
}

// Strings adds a string-slice field.
func Strings(key string, v []string) Field {
	return Field{
		key:    key,
		add:    func(e *zerolog.Event) { e.Strs(key, v) },
		attach: func(c zerolog.Context) zerolog.Context { return c.Strs(key, v) },
	}
}

// Int adds an int field.
func Int(key string, v int) Field {
	return Field{
		key:    key,
		add:    func(e *zerolog.Event) { e.Int(key, v) },
		attach: func(c zerolog.Context) zerolog.Context { return c.Int(key, v) },
	}
}

// Float adds a float64 field.
func Float(key string, v float64) Field {
	return Field{
		key:    key,
		add:    func(e *zerolog.Event) { e.Float64(key, v) },
		attach: func(c zerolog.Context) zerolog.Context { return c.Float64(key, v) },
	}
}

// Duration adds a duration field.
func Duration(key string, v time.Duration) Field {
	return Field{
		key:    key,
		add:    func(e *zerolog.Event) { e.Dur(key, v) },
		attach: func(c zerolog.Context) zerolog.Context { return c.Dur(key, v) },
	}
}

// Err adds the standard "error" field.
func Err(err error) Field {
	return Field{
		key:    zerolog.ErrorFieldName,
		add:    func(e *zerolog.Event) { e.Err(err) },
		attach: func(c zerolog.Context) zerolog.Context { return c.Err(err) },
	}
}

// Key reports the field name.
func (f Field) Key() string { return f.key }
