package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/cashlog"
	"github.com/etnz/cashlog/ofx"
	"github.com/google/subcommands"
)

type importOFXCmd struct {
	cfg    *Config
	desc   string
	totals bool
	out    outputFlags
}

func (*importOFXCmd) Name() string { return "import-ofx" }
func (*importOFXCmd) Synopsis() string {
	return "convert an OFX bank statement into a ledger"
}
func (*importOFXCmd) Usage() string {
	return `cashlog import-ofx [-desc name|memo|both] [-totals] [-od <c>] [-sep] [-o <file>] [<statement.ofx>]

  Reads a bank or credit card statement downloaded in the OFX format (the
  standard input if no file or '-' is given), and writes its transactions as
  a ledger, in the order of the statement.

  The description of each entry is the payee name, the memo, or both.

Usage Examples:
$ cashlog import-ofx -desc both statement.ofx > january.csv
$ cashlog import-ofx -totals statement.ofx
`
}

func (c *importOFXCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.desc, "desc", "name", "Description source: name, memo or both.")
	f.BoolVar(&c.totals, "totals", false, "Write the running total of each entry.")
	c.out.SetFlags(f)
}

func (c *importOFXCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		logger.Error("too many arguments", "args", f.Args())
		return subcommands.ExitUsageError
	}
	src, err := ofx.ParseDescSource(c.desc)
	if err != nil {
		logger.Error("invalid -desc", "err", err)
		return subcommands.ExitUsageError
	}

	ledger, err := c.decode(f.Arg(0), src)
	if err != nil {
		logger.Error("cannot read statement", "err", err)
		return subcommands.ExitFailure
	}
	logger.Debug("statement read", "file", displayName(f.Arg(0)), "entries", ledger.Len())

	if c.out.delimiter == "" && c.cfg.Delimiter != 0 {
		c.out.delimiter = formatDelimiter(c.cfg.Delimiter)
	}
	if err := c.out.encode(ledger, c.totals); err != nil {
		logger.Error("cannot write ledger", "err", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *importOFXCmd) decode(name string, src ofx.DescSource) (*cashlog.Ledger, error) {
	r, err := openInput(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	ledger, err := ofx.Decode(r, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", displayName(name), err)
	}
	return ledger, nil
}
