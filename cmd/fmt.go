package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type fmtCmd struct {
	cfg     *Config
	in      inputFlags
	out     outputFlags
	inPlace bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats a ledger into its canonical form"
}
func (*fmtCmd) Usage() string {
	return `cashlog fmt [-d <c>] [-od <c>] [-sep] [-o <file> | -w] [<ledger>]

  Validates a ledger and writes it back in canonical form: header
  'datetime,amount,desc', explicit signs, no trailing zeros, and datetimes with
  an explicit UTC offset. Any 'total' column is dropped.

  With -w the ledger file is rewritten in place.

Usage Examples:
$ cashlog fmt -w gifts.csv
$ cashlog fmt -d '|' -od ',' pipes.csv
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	c.in.SetFlags(f, c.cfg)
	c.out.SetFlags(f)
	f.BoolVar(&c.inPlace, "w", false, "Write the result to the ledger file instead of -o.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		logger.Error("too many arguments", "args", f.Args())
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)
	if c.inPlace {
		if isStd(name) {
			logger.Error("-w requires a ledger file")
			return subcommands.ExitUsageError
		}
		c.out.output = name
	}

	ledger, err := c.in.decode(name)
	if err != nil {
		logger.Error("cannot read ledger", "err", err)
		return subcommands.ExitFailure
	}

	if err := c.out.encode(ledger, false); err != nil {
		logger.Error("cannot write ledger", "err", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
