// SPDX-License-Identifier: MIT
// File: config.go
// Role: Driver configuration, file loading and validation.

package explore

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cliques/builder"
)

// Defaults for DefaultConfig.
const (
	DefaultIterations = 6
	DefaultBound      = 2000
	DefaultTarget     = "octahedron"
)

// Config holds the knobs of Run and Classify.
type Config struct {
	// Iterations is the number of K steps after step 0.
	Iterations int `toml:"iterations" yaml:"iterations" validate:"gte=0,lte=64"`

	// Bound caps the maximal cliques of each step; -1 (clique.NoBound) disables it.
	Bound int `toml:"bound" yaml:"bound" validate:"gte=-1"`

	// Pare removes dominated vertices after each step.
	Pare bool `toml:"pare" yaml:"pare"`

	// Targets are builder names tested as retracts at every step.
	Targets []string `toml:"targets" yaml:"targets" validate:"dive,graphname"`

	// Workers limits Classify's concurrency; 0 means GOMAXPROCS.
	Workers int `toml:"workers" yaml:"workers" validate:"gte=0"`
}

// DefaultConfig returns the defaults used when no file is given.
func DefaultConfig() Config {
	return Config{
		Iterations: DefaultIterations,
		Bound:      DefaultBound,
		Pare:       true,
		Targets:    []string{DefaultTarget},
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("graphname", func(fl validator.FieldLevel) bool {
		_, err := builder.ByName(fl.Field().String())
		return err == nil
	})

	return v
}

// Validate checks field ranges and that every target names a graph.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}

	return runtime.GOMAXPROCS(0)
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) file over
// DefaultConfig and validates the result. Fields absent from the file keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "explore: read config")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, errors.Wrapf(ErrConfigFormat, "explore: %s", path)
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "explore: parse %s", path)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "explore: %s", path)
	}

	return cfg, nil
}
