// SPDX-License-Identifier: MIT
// Package: seqlath/config
//
// config.go — YAML configuration for the evaluation harness.

// Package config loads, defaults and validates the harness configuration.
//
// Resolution order: struct-tag defaults, then the YAML file, then whatever
// the caller overrides (CLI flags), then Validate.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqlath/logging"
	"github.com/katalvlaran/seqlath/predictors"
)

var (
	// ErrRead indicates the configuration source could not be read or parsed.
	ErrRead = errors.New("config: read failed")

	// ErrInvalid indicates a value failed validation.
	ErrInvalid = errors.New("config: invalid")
)

// Corpus locates the reference sequences.
type Corpus struct {
	Path      string `yaml:"path"`
	Limit     int    `yaml:"limit" validate:"gte=0"`
	MinLength int    `yaml:"min_length" validate:"gte=0"`
}

// Config is the full harness configuration.
type Config struct {
	Corpus      Corpus         `yaml:"corpus"`
	Predictors  []string       `yaml:"predictors" default:"[\"slope-and-bias\",\"improved-division-zero\",\"improved-division\",\"subtraction\"]" validate:"min=1,dive,predictor"`
	Margins     []float64      `yaml:"margins" default:"[5,2,1.1,1.01,1.001,1.0000001,1]" validate:"min=1,dive,finite,gte=1"`
	Workers     int            `yaml:"workers" default:"4" validate:"gte=1"`
	Truncation  int            `yaml:"truncation" default:"6" validate:"gte=-1"`
	Log         logging.Config `yaml:"log"`
	MetricsFile string         `yaml:"metrics_file"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("predictor", func(fl validator.FieldLevel) bool {
		return predictors.Known(fl.Field().String())
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		x := fl.Field().Float()
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	})

	return v
}

// Default returns a Config holding only the tag defaults.
func Default() *Config {
	var c Config
	if err := defaults.Set(&c); err != nil {
		// Tag literals are constants; failure here is a programming error.
		panic(fmt.Sprintf("config: defaults: %v", err))
	}

	return &c
}

// Load reads path, applies defaults and validates.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes YAML from r on top of the defaults and validates. Unknown
// keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks every field rule and reports all violations at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "finite":
		return fmt.Sprintf("%s must be finite, got %v", field, fe.Value())
	case "predictor":
		return fmt.Sprintf("%s: unknown predictor %q", field, fe.Value())
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "required":
		return fmt.Sprintf("%s is required", field)
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
