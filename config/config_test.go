package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/cashflow"
	"github.com/phuslu/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfc.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, cashflow.DefaultGuess, cfg.Solver.Guess)
	assert.Equal(t, cashflow.DefaultTolerance, cfg.Solver.Tolerance)
	assert.Equal(t, cashflow.DefaultMaxIterations, cfg.Solver.MaxIterations)
	assert.Equal(t, "%Y-%m-%d", cfg.Dates.Format)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Empty(t, cfg.Output.Currency)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
[solver]
guess = 0.05
max_iterations = 50

[dates]
format = "%d-%b-%Y"

[output]
format = "markdown"
currency = "EUR"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.05, cfg.Solver.Guess)
	assert.Equal(t, 50, cfg.Solver.MaxIterations)
	assert.Equal(t, cashflow.DefaultTolerance, cfg.Solver.Tolerance, "unset keys keep their default")
	assert.Equal(t, "%d-%b-%Y", cfg.Dates.Format)
	assert.Equal(t, "markdown", cfg.Output.Format)
	assert.Equal(t, "EUR", cfg.Output.Currency)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[solver]\nmax_iterations = 50\n")
	t.Setenv("CFC_SOLVER_MAX_ITERATIONS", "200")
	t.Setenv("CFC_LOGGING_LEVEL", "debug")
	t.Setenv("CFC_OUTPUT_FORMAT", "html")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 200, cfg.Solver.MaxIterations)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "html", cfg.Output.Format)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative iterations", "[solver]\nmax_iterations = -1\n"},
		{"zero tolerance", "[solver]\ntolerance = 0.0\n"},
		{"guess out of domain", "[solver]\nguess = -1.5\n"},
		{"unknown output", "[output]\nformat = \"pdf\"\n"},
		{"lowercase currency", "[output]\ncurrency = \"eur\"\n"},
		{"unknown level", "[logging]\nlevel = \"chatty\"\n"},
		{"unsupported date directive", "[dates]\nformat = \"%Q\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, cashflow.ErrConfiguration), "got %v", err)
		})
	}
}

func TestLoad_InvalidFiles(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[solver\nguess = "))
	assert.Error(t, err)

	t.Setenv("CFC_SOLVER_MAX_ITERATIONS", "many")
	_, err = Load("")
	assert.Error(t, err)
}

func TestNewSolver(t *testing.T) {
	cfg := NewDefault()
	cfg.Solver.MaxIterations = 7
	logger := cfg.NewLogger(&bytes.Buffer{})

	sv := cfg.NewSolver(logger)
	assert.Equal(t, 7, sv.MaxIterations)
	assert.Equal(t, cashflow.DefaultGuess, sv.Guess)
	assert.Same(t, logger, sv.Logger)

	sol, err := sv.Solve(cashflow.MustSeries(cashflow.Flow{Time: 0, Amount: 100}, cashflow.Flow{Time: 1, Amount: -110}))
	require.NoError(t, err)
	assert.InDelta(t, 0.1, sol.Rate, 1e-9)
}

func TestNewLogger(t *testing.T) {
	cfg := NewDefault()
	cfg.Logging.Level = "debug"
	var buf bytes.Buffer
	logger := cfg.NewLogger(&buf)

	assert.Equal(t, log.DebugLevel, logger.Level)
	logger.Debug().Str("mode", "xirr").Msg("solving")
	assert.Contains(t, buf.String(), "solving")

	cfg.Logging.Level = "warn"
	buf.Reset()
	cfg.NewLogger(&buf).Info().Msg("hidden")
	assert.Empty(t, buf.String())
}
