// Package config loads the cfc settings.
//
// Settings are resolved with priority: defaults -> TOML file -> CFC_* environment variables.
// The result is validated before use.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/etnz/cashflow"
	"github.com/etnz/cashflow/date"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
	"github.com/phuslu/log"
)

// EnvPrefix prefixes every environment override, e.g. CFC_SOLVER_MAX_ITERATIONS.
const EnvPrefix = "CFC"

// Config represents the cfc configuration.
type Config struct {
	Solver  SolverConfig  `toml:"solver" envconfig:"SOLVER"`
	Dates   DatesConfig   `toml:"dates" envconfig:"DATES"`
	Output  OutputConfig  `toml:"output" envconfig:"OUTPUT"`
	Logging LoggingConfig `toml:"logging" envconfig:"LOGGING"`
}

// SolverConfig contains the XIRR solver settings.
type SolverConfig struct {
	Guess         float64 `toml:"guess" envconfig:"GUESS" validate:"gt=-1"`
	Tolerance     float64 `toml:"tolerance" envconfig:"TOLERANCE" validate:"gt=0"`
	MaxIterations int     `toml:"max_iterations" envconfig:"MAX_ITERATIONS" validate:"min=1,max=10000"`
}

// DatesConfig contains the default date format of the dated cashflows.
type DatesConfig struct {
	Format string `toml:"format" envconfig:"FORMAT" validate:"required"`
}

// OutputConfig contains the report settings.
type OutputConfig struct {
	Format   string `toml:"format" envconfig:"FORMAT" validate:"oneof=text markdown html"`
	Currency string `toml:"currency" envconfig:"CURRENCY" validate:"omitempty,len=3,uppercase"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `toml:"level" envconfig:"LEVEL" validate:"oneof=trace debug info warn error"`
}

// NewDefault returns the built-in configuration.
func NewDefault() *Config {
	return &Config{
		Solver: SolverConfig{
			Guess:         cashflow.DefaultGuess,
			Tolerance:     cashflow.DefaultTolerance,
			MaxIterations: cashflow.DefaultMaxIterations,
		},
		Dates:   DatesConfig{Format: cashflow.DefaultDateFormat},
		Output:  OutputConfig{Format: "text"},
		Logging: LoggingConfig{Level: "warn"},
	}
}

// Load loads the configuration from path, if not empty, then applies the environment overrides.
func Load(path string) (*Config, error) {
	cfg := NewDefault()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every setting, errors wrap cashflow.ErrConfiguration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: invalid settings: %v", cashflow.ErrConfiguration, err)
	}
	if _, err := date.Layout(c.Dates.Format); err != nil {
		return fmt.Errorf("%w: invalid date format: %v", cashflow.ErrConfiguration, err)
	}
	return nil
}

// NewSolver returns the solver configured by c, logging into logger.
func (c *Config) NewSolver(logger *log.Logger) cashflow.Solver {
	return cashflow.Solver{
		Guess:         c.Solver.Guess,
		Tolerance:     c.Solver.Tolerance,
		MaxIterations: c.Solver.MaxIterations,
		Logger:        logger,
	}
}

// NewLogger returns a console logger writing to w at the configured level.
func (c *Config) NewLogger(w io.Writer) *log.Logger {
	return &log.Logger{
		Level:  log.ParseLevel(c.Logging.Level),
		Writer: &log.ConsoleWriter{Writer: w},
	}
}
