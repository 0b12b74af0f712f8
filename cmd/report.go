package cmd

import (
	"context"
	"flag"
	"path/filepath"

	"github.com/etnz/cashlog/date"
	"github.com/etnz/cashlog/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	cfg      *Config
	in       inputFlags
	amounts  bool
	totals   bool
	period   string
	start    string
	end      string
	currency string
	title    string
	markdown bool
	html     bool
	output   string
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "display the amounts and running total of a ledger"
}
func (*reportCmd) Usage() string {
	return `cashlog report [-amount] [-total] [-p <period>] [-s <date>] [-e <date>] [-currency <code>] [-md | -html] [-o <file>] [<ledger>]

  Renders a report of the ledger: a summary, the amounts of every entry, the
  running total at the end of each day and a summary per period.

  Use -amount or -total to only show one of the two charts, both are shown by
  default. The report is rendered for the terminal, unless -md or -html asks
  for markdown or an HTML page.

Usage Examples:
$ cashlog report gifts.csv
$ cashlog report -total -p week -currency EUR gifts.csv
$ cashlog report -html -o gifts.html gifts.csv
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.in.SetFlags(f, c.cfg)
	f.BoolVar(&c.amounts, "amount", false, "Show the amounts chart.")
	f.BoolVar(&c.totals, "total", false, "Show the running total chart.")
	f.StringVar(&c.period, "p", "month", "Period of the summary (day, week, month, quarter, year).")
	f.StringVar(&c.start, "s", "", "Only report entries on or after this date (YYYY-MM-DD).")
	f.StringVar(&c.end, "e", "", "Only report entries on or before this date (YYYY-MM-DD).")
	f.StringVar(&c.currency, "currency", c.cfg.Currency, "ISO 4217 currency code used to format amounts.")
	f.StringVar(&c.title, "title", "", "Report title, defaults to the ledger file name.")
	f.BoolVar(&c.markdown, "md", false, "Write raw markdown.")
	f.BoolVar(&c.html, "html", false, "Write an HTML page.")
	f.StringVar(&c.output, "o", "-", "Output file, '-' for the standard output.")
}

// options returns the report options from the flags.
func (c *reportCmd) options(name string) (renderer.ReportOptions, error) {
	opts := renderer.ReportOptions{
		Title:    c.title,
		Currency: c.currency,
		Amounts:  c.amounts,
		Totals:   c.totals,
	}
	if !isStd(name) {
		opts.Source = filepath.Base(name)
		if opts.Title == "" {
			opts.Title = opts.Source
		}
	}

	period, err := date.ParsePeriod(c.period)
	if err != nil {
		return opts, err
	}
	opts.Period = period

	if c.start != "" {
		if opts.Range.From, err = date.Parse(c.start); err != nil {
			return opts, err
		}
	}
	if c.end != "" {
		if opts.Range.To, err = date.Parse(c.end); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		logger.Error("too many arguments", "args", f.Args())
		return subcommands.ExitUsageError
	}
	if c.markdown && c.html {
		logger.Error("-md and -html are mutually exclusive")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)
	opts, err := c.options(name)
	if err != nil {
		logger.Error("invalid report options", "err", err)
		return subcommands.ExitUsageError
	}

	ledger, err := c.in.decode(name)
	if err != nil {
		logger.Error("cannot read ledger", "err", err)
		return subcommands.ExitFailure
	}

	report := renderer.NewReport(ledger.Totals(), opts)
	md := renderer.RenderReport(report)

	switch {
	case c.html:
		page, err := markdownToHTML(report.Title, md)
		if err == nil {
			err = writeOutput(c.output, page)
		}
		if err != nil {
			logger.Error("cannot write report", "err", err)
			return subcommands.ExitFailure
		}
	case c.markdown || !isStd(c.output):
		if err := writeOutput(c.output, []byte(md)); err != nil {
			logger.Error("cannot write report", "err", err)
			return subcommands.ExitFailure
		}
	default:
		printMarkdown(stdout, md, c.cfg.Style)
	}
	return subcommands.ExitSuccess
}
