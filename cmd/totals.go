package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type totalsCmd struct {
	cfg *Config
	in  inputFlags
	out outputFlags
}

func (*totalsCmd) Name() string     { return "totals" }
func (*totalsCmd) Synopsis() string { return "compute the running total of a ledger" }
func (*totalsCmd) Usage() string {
	return `cashlog totals [-d <c>] [-od <c>] [-sep] [-o <file>] [<ledger>]

  Reads a ledger (the standard input if no file or '-' is given), and writes
  every entry with the running total of all amounts up to and including it.

  The output header is 'datetime,amount,total,desc', amounts and totals carry
  an explicit sign and datetimes an explicit UTC offset.

Usage Examples:
$ cashlog totals gifts.csv
$ cat gifts.csv | cashlog totals -od ';' -o totals.csv
`
}

func (c *totalsCmd) SetFlags(f *flag.FlagSet) {
	c.in.SetFlags(f, c.cfg)
	c.out.SetFlags(f)
}

func (c *totalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		logger.Error("too many arguments", "args", f.Args())
		return subcommands.ExitUsageError
	}

	ledger, err := c.in.decode(f.Arg(0))
	if err != nil {
		logger.Error("cannot read ledger", "err", err)
		return subcommands.ExitFailure
	}

	if err := c.out.encode(ledger, true); err != nil {
		logger.Error("cannot write totals", "err", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
