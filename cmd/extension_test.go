package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("the test extension is a shell script")
	}
	tempDir := t.TempDir()

	// cashlog-hello prints the configuration it receives and its arguments.
	script := fmt.Sprintf("#!/bin/sh\necho \"%[1]s=$%[1]s\"\necho \"%[2]s=$%[2]s\"\necho \"%[3]s=$%[3]s\"\necho \"args=$*\"\n",
		EnvDelimiter, EnvCurrency, EnvVerbose)
	if err := os.WriteFile(filepath.Join(tempDir, "cashlog-hello"), []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write cashlog-hello: %v", err)
	}

	// Compile the main cashlog binary.
	cashlogBinaryPath := filepath.Join(tempDir, "cashlog")
	build := exec.Command("go", "build", "-o", cashlogBinaryPath, "../cashlog")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile cashlog binary: %v", err)
	}

	envFile := filepath.Join(tempDir, "test.env")
	if err := os.WriteFile(envFile, []byte("CASHLOG_CURRENCY=XYZ\n"), 0644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	cmd := exec.Command(cashlogBinaryPath, "-env", envFile, "-v", "hello", "-d", "|", "ledger.csv")
	cmd.Dir = tempDir
	cmd.Env = []string{
		"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH"),
		EnvDelimiter + "=;",
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("cashlog command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	output := stdout.String()
	for _, expectedLine := range []string{
		EnvDelimiter + "=;",
		EnvCurrency + "=XYZ",
		EnvVerbose + "=true",
		"args=-d | ledger.csv",
	} {
		if !strings.Contains(output, expectedLine) {
			t.Errorf("Expected output to contain %q, but got:\n%s", expectedLine, output)
		}
	}

	// Unknown subcommands without extension are usage errors.
	cmd = exec.Command(cashlogBinaryPath, "nope")
	cmd.Dir = tempDir
	cmd.Env = []string{"PATH=" + tempDir}
	err := cmd.Run()
	exitErr, ok := err.(*exec.ExitError)
	if !ok || exitErr.ExitCode() == 0 {
		t.Errorf("cashlog nope: expected a failure, got %v", err)
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if ok, code := RunExtension("does-not-exist", nil, &Config{}); ok || code != 0 {
		t.Errorf("RunExtension() = %v, %d, want false, 0", ok, code)
	}
}
