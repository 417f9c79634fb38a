package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	tempDir := t.TempDir()

	// cfc-hello prints the environment it receives, and its arguments.
	helloSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
	"strings"
)

func main() {
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("args=%%s\n", strings.Join(os.Args[1:], " "))
	os.Exit(3)
}
`, EnvConfigFile, EnvConfigFile, EnvOutputFormat, EnvOutputFormat, EnvVerbose, EnvVerbose)

	helloPath := filepath.Join(tempDir, "cfc-hello")
	srcFile := helloPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloSource), 0644); err != nil {
		t.Fatalf("Failed to write cfc-hello source: %v", err)
	}
	build := exec.Command("go", "build", "-o", helloPath, srcFile)
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile cfc-hello: %v", err)
	}

	cfcPath := filepath.Join(tempDir, "cfc")
	build = exec.Command("go", "build", "-o", cfcPath, "../cfc")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile cfc binary: %v", err)
	}

	configPath := filepath.Join(tempDir, "cfc.toml")
	args := []string{
		"-config", configPath,
		"-format", "markdown",
		"-v",
		"hello", // the extension subcommand
		"world",
	}
	cfc := exec.Command(cfcPath, args...)
	cfc.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH")}

	var stdout, stderr bytes.Buffer
	cfc.Stdout = &stdout
	cfc.Stderr = &stderr
	err := cfc.Run()

	exitErr, ok := err.(*exec.ExitError)
	if !ok || exitErr.ExitCode() != 3 {
		t.Fatalf("cfc hello error = %v, want exit status 3\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	output := stdout.String()
	for _, want := range []string{
		EnvConfigFile + "=" + configPath,
		EnvOutputFormat + "=markdown",
		EnvVerbose + "=true",
		"args=world",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, but got:\n%s", want, output)
		}
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if found, code := RunExtension("missing", nil); found || code != 0 {
		t.Errorf("RunExtension() = %v, %d, want false, 0", found, code)
	}
}
