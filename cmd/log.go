package cmd

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger reports progress and errors on stderr, stdout is kept for the command output.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "cashlog"})

// SetupLogging applies the configuration to the logger.
func SetupLogging(cfg *Config) {
	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportTimestamp(true)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
}
