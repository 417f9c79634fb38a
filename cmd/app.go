// Package cmd implements the cfc command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/cashflow"
	"github.com/etnz/cashflow/config"
	"github.com/google/subcommands"
	"github.com/phuslu/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&valueCmd{mode: cashflow.XIRR}, "valuation")
	c.Register(&valueCmd{mode: cashflow.Present}, "valuation")

	c.Register(&emiCmd{}, "loans")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to a TOML configuration file")
var outputFormat = flag.String("format", "", "Output format: text, markdown or html. Overrides the configuration")
var Verbose = flag.Bool("v", false, "Log every solver step on stderr")

// stdout is where reports are printed.
var stdout io.Writer = os.Stdout

// loadConfig loads the configuration file, and applies the global flags over it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *outputFormat != "" {
		cfg.Output.Format = *outputFormat
	}
	if *Verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, cfg.Validate()
}

// newLogger returns the application logger, writing to stderr.
func newLogger(cfg *config.Config) *log.Logger {
	return cfg.NewLogger(os.Stderr)
}

// exitStatus maps an error to the exit status: inconsistent options are usage errors.
func exitStatus(err error) subcommands.ExitStatus {
	if errors.Is(err, cashflow.ErrConfiguration) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// fail reports err on stderr and returns its exit status.
func fail(context string, err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", context, err)
	return exitStatus(err)
}
