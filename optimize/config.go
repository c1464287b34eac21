// SPDX-License-Identifier: MIT

package optimize

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/riemann/gradient"
	"github.com/katalvlaran/riemann/manifold"
)

// Default configuration values.
const (
	DefaultLearningRate  = 0.01
	DefaultMaxIterations = 1000
	DefaultTolerance     = 1e-6
)

// Config is the serializable form of a GradientDescent.
//
// Example document:
//
//	learning_rate: 0.1
//	max_iterations: 500
//	tolerance: 1e-8
//	epsilon: 1e-7
//	strict: true
//	parallel_gradient: 4
type Config struct {
	LearningRate     float64 `yaml:"learning_rate" validate:"gt=0,finite"`
	MaxIterations    int     `yaml:"max_iterations" validate:"gte=1"`
	Tolerance        float64 `yaml:"tolerance" validate:"gt=0,finite"`
	Epsilon          float64 `yaml:"epsilon" validate:"gt=0,finite"`
	Strict           bool    `yaml:"strict"`
	ParallelGradient int     `yaml:"parallel_gradient,omitempty" validate:"gte=0"`
}

var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	// report yaml keys rather than Go field names
	configValidate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := configValidate.RegisterValidation("finite", validateFinite); err != nil {
		panic(fmt.Sprintf("optimize: register finite validation: %v", err))
	}
}

// validateFinite rejects NaN and ±Inf float fields.
func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.Float32 && f.Kind() != reflect.Float64 {
		return true
	}
	v := f.Float()

	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// DefaultConfig returns learning rate 0.01, 1000 iterations, tolerance 1e-6
// and gradient epsilon 1e-7, non-strict and sequential.
func DefaultConfig() Config {
	return Config{
		LearningRate:  DefaultLearningRate,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		Epsilon:       gradient.DefaultEpsilon,
	}
}

// Validate checks every field.
// Errors: InvalidParameter naming the first offending yaml key.
func (c Config) Validate() error {
	err := configValidate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &manifold.Error{
			Kind:   manifold.KindInvalidParameter,
			Reason: fmt.Sprintf("%s: failed %q check (value %v)", fe.Field(), fe.Tag(), fe.Value()),
			Err:    err,
		}
	}

	return &manifold.Error{Kind: manifold.KindInvalidParameter, Reason: err.Error(), Err: err}
}

// LoadConfig decodes a YAML document from r on top of DefaultConfig and
// validates the result. Unknown keys are rejected; an empty document yields
// the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, &manifold.Error{
			Kind:   manifold.KindInvalidParameter,
			Reason: fmt.Sprintf("decode config: %v", err),
			Err:    err,
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseConfig is LoadConfig over an in-memory document.
func ParseConfig(data []byte) (Config, error) {
	return LoadConfig(bytes.NewReader(data))
}

// Options converts cfg into GradientDescent options (excluding the three
// positional parameters).
func (c Config) Options() []Option {
	opts := []Option{WithEpsilon(c.Epsilon), WithParallelGradient(c.ParallelGradient)}
	if c.Strict {
		opts = append(opts, WithStrictConvergence())
	}

	return opts
}

// NewFromConfig validates cfg and builds a GradientDescent. Extra opts are
// applied after the ones derived from cfg (e.g. WithLogger).
func NewFromConfig(cfg Config, opts ...Option) (*GradientDescent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return NewGradientDescent(cfg.LearningRate, cfg.MaxIterations, cfg.Tolerance, append(cfg.Options(), opts...)...)
}
