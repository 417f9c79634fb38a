package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// Environment variables passing the global flags to extensions.
const (
	EnvConfigFile   = "CFC_CONFIG_FILE"
	EnvOutputFormat = "CFC_OUTPUT_FORMAT"
	EnvVerbose      = "CFC_VERBOSE"
)

// RunExtension attempts to find and execute an external cfc-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "cfc-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Global flags are passed as environment variables.
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvConfigFile+"="+*configFile)
	if *outputFormat != "" {
		cmd.Env = append(cmd.Env, EnvOutputFormat+"="+*outputFormat)
	}
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose))

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
