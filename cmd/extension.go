package cmd

import (
	"errors"
	"os"
	"os/exec"
)

// ExtensionPrefix prefixes the name of the binaries run for unknown subcommands.
const ExtensionPrefix = "cashlog-"

// RunExtension attempts to find and execute an external cashlog-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The extension inherits the standard streams and the environment, plus the configuration
// as CASHLOG_* variables.
func RunExtension(subcommand string, args []string, cfg *Config) (bool, int) {
	name := ExtensionPrefix + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		logger.Debug("extension not found in PATH", "name", name, "err", err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), cfg.Environ()...)

	logger.Debug("running extension", "path", lp, "args", args)
	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		logger.Error("cannot execute extension", "name", name, "err", err)
		return true, 1
	}
	return true, 0
}
