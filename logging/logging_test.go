// SPDX-License-Identifier: MIT
// Package: seqlath/logging
//
// logging_test.go — level filtering, formats and fields.

package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/seqlath/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewWriter_JSONFields verifies fields land in the JSON payload.
func TestNewWriter_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.NewWriter(&buf, logging.Config{Level: "debug", Format: "json"})
	require.NoError(t, err)

	l.With(logging.String("run", "r1")).Info("done",
		logging.Int("passed", 3),
		logging.Float("margin", 1.1),
		logging.Strings("names", []string{"a", "b"}),
		logging.Err(errors.New("boom")),
	)

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "info", got["level"])
	assert.Equal(t, "done", got["message"])
	assert.Equal(t, "r1", got["run"])
	assert.EqualValues(t, 3, got["passed"])
	assert.EqualValues(t, 1.1, got["margin"])
	assert.Equal(t, "boom", got["error"])
}

// TestNewWriter_LevelFilter drops events below the configured level.
func TestNewWriter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.NewWriter(&buf, logging.Config{Level: "warn", Format: "json"})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("hidden")
	assert.Zero(t, buf.Len())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

// TestNewWriter_BadConfig rejects unknown levels and formats.
func TestNewWriter_BadConfig(t *testing.T) {
	_, err := logging.NewWriter(&bytes.Buffer{}, logging.Config{Level: "loud"})
	assert.Error(t, err)

	_, err = logging.NewWriter(&bytes.Buffer{}, logging.Config{Format: "xml"})
	assert.ErrorIs(t, err, logging.ErrBadFormat)
}

// TestNew_File appends to a file and closes it.
func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	l, err := logging.New(logging.Config{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)
	l.Info("hello")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

// TestNop is silent and nil-safe via OrNop.
func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		logging.OrNop(nil).Error("nothing")
		assert.NoError(t, logging.Nop().Close())
	})
}
