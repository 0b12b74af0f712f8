// Package cmd implements the subcommands of the cashlog command line.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// Verbose enables debug logs.
var Verbose = flag.Bool("v", false, "print debug logs, defaults to $"+EnvVerbose)

// EnvFile is the dotenv file loaded before reading the configuration.
var EnvFile = flag.String("env", "", "dotenv file to load, '.env' is loaded when present if empty")

// Commands returns the cashlog subcommands, reading their flag defaults from cfg.
func Commands(cfg *Config) []subcommands.Command {
	return []subcommands.Command{
		&totalsCmd{cfg: cfg},
		&fmtCmd{cfg: cfg},
		&importOFXCmd{cfg: cfg},
		&reportCmd{cfg: cfg},
		&exportCmd{cfg: cfg},
		&topicCmd{cfg: cfg},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander, cfg *Config) {
	for _, cmd := range Commands(cfg) {
		switch cmd.Name() {
		case "totals", "fmt", "import-ofx":
			c.Register(cmd, "ledger")
		case "report", "export":
			c.Register(cmd, "reports")
		default:
			c.Register(cmd, "help")
		}
	}
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
}

// IsRegistered reports whether name is a subcommand of c.
func IsRegistered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}
