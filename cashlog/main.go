// Command cashlog reads ledgers of dated amounts, computes their running total, and renders
// them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/cashlog/cmd"
	"github.com/google/subcommands"
)

func main() {
	cfg := new(cmd.Config)
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander, cfg)

	// Exits when called by the shell for completion.
	cmd.Completion(flag.CommandLine, cmd.Commands(cfg)...).Complete("cashlog")

	flag.Parse()

	loaded, err := cmd.LoadConfig(*cmd.EnvFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	*cfg = *loaded
	if *cmd.Verbose {
		cfg.Verbose = true
	}
	cmd.SetupLogging(cfg)

	if flag.NArg() > 0 && !cmd.IsRegistered(commander, flag.Arg(0)) {
		if ok, code := cmd.RunExtension(flag.Arg(0), flag.Args()[1:], cfg); ok {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}
