// SPDX-License-Identifier: MIT
// Package: seqlath/corpus
//
// corpus.go — stripped-format parser and gzip-aware file access.

package corpus

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

var (
	// ErrMalformedLine indicates a line that is not "<id> <numbers>".
	ErrMalformedLine = errors.New("corpus: malformed line")

	// ErrOpen indicates the corpus file could not be opened or decompressed.
	ErrOpen = errors.New("corpus: open failed")
)

// maxLine bounds a single line; the longest OEIS entries are a few KiB.
const maxLine = 1 << 20

// Entry is one named sequence.
type Entry struct {
	ID     string
	Values []float64
}

// Option customizes Parse.
type Option func(*parseConfig)

type parseConfig struct {
	limit  int
	minLen int
}

// WithLimit stops after n entries; 0 means no limit. Panics if n < 0.
func WithLimit(n int) Option {
	if n < 0 {
		panic("corpus: WithLimit(n<0)")
	}
	return func(c *parseConfig) { c.limit = n }
}

// WithMinLength skips entries with fewer than n values. Panics if n < 0.
func WithMinLength(n int) Option {
	if n < 0 {
		panic("corpus: WithMinLength(n<0)")
	}
	return func(c *parseConfig) { c.minLen = n }
}

// Parse reads entries from r. A malformed line aborts with ErrMalformedLine
// and its 1-based line number.
func Parse(r io.Reader, opts ...Option) ([]Entry, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var out []Entry
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		e, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLine, lineNo, err)
		}
		if len(e.Values) < cfg.minLen {
			continue
		}
		out = append(out, e)
		if cfg.limit > 0 && len(out) == cfg.limit {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("corpus: scan: %w", err)
	}

	return out, nil
}

func parseLine(line string) (Entry, error) {
	id, rest, ok := strings.Cut(line, " ")
	if !ok || id == "" {
		return Entry{}, errors.New("missing identifier separator")
	}
	rest = strings.Trim(strings.TrimSpace(rest), ",")
	if rest == "" {
		return Entry{ID: id}, nil
	}

	fields := strings.Split(rest, ",")
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			var nerr *strconv.NumError
			// Out-of-range integers still parse to ±Inf; only syntax is fatal.
			if !errors.As(err, &nerr) || !errors.Is(nerr.Err, strconv.ErrRange) {
				return Entry{}, fmt.Errorf("value %d: %w", i+1, err)
			}
		}
		vals[i] = v
	}

	return Entry{ID: id, Values: vals}, nil
}

var gzipMagic = []byte{0x1f, 0x8b}

// Open returns a reader over path, transparently gunzipping when the file
// starts with the gzip magic bytes.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}

	br := bufio.NewReader(f)
	head, _ := br.Peek(len(gzipMagic))
	if !bytes.Equal(head, gzipMagic) {
		return readCloser{Reader: br, close: f.Close}, nil
	}

	zr, err := gzip.NewReader(br)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: gzip: %v", ErrOpen, err)
	}

	return readCloser{Reader: zr, close: func() error {
		return errors.Join(zr.Close(), f.Close())
	}}, nil
}

// Load opens path and parses it.
func Load(path string, opts ...Option) ([]Entry, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return Parse(rc, opts...)
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r readCloser) Close() error { return r.close() }
