package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"slices"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/cashlog"
	"github.com/google/subcommands"
	"gopkg.in/yaml.v3"
)

type exportCmd struct {
	cfg    *Config
	in     inputFlags
	format string
	path   string
	output string
}

func (*exportCmd) Name() string { return "export" }
func (*exportCmd) Synopsis() string {
	return "export the ledger with its running total as JSON or YAML"
}
func (*exportCmd) Usage() string {
	return `cashlog export [-format json|yaml] [-path <jsonpath>] [-o <file>] [<ledger>]

  Writes every entry with its running total as a list of objects with the keys
  'datetime', 'amount', 'total' and 'desc' (omitted when empty).

  -path selects a part of the list with a JSONPath expression before writing it.

Usage Examples:
$ cashlog export -format yaml gifts.csv
$ cashlog export -path '$[-1:].total' gifts.csv
$ cashlog export -path '$[?(@.amount < 0)].desc' gifts.csv
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.in.SetFlags(f, c.cfg)
	f.StringVar(&c.format, "format", "json", "Output format (json, yaml).")
	f.StringVar(&c.path, "path", "", "JSONPath expression selecting the exported values.")
	f.StringVar(&c.output, "o", "-", "Output file, '-' for the standard output.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		logger.Error("too many arguments", "args", f.Args())
		return subcommands.ExitUsageError
	}
	if c.format != "json" && c.format != "yaml" {
		logger.Error("unknown export format", "format", c.format)
		return subcommands.ExitUsageError
	}

	ledger, err := c.in.decode(f.Arg(0))
	if err != nil {
		logger.Error("cannot read ledger", "err", err)
		return subcommands.ExitFailure
	}

	content, err := export(ledger, c.format, c.path)
	if err != nil {
		logger.Error("cannot export ledger", "err", err)
		return subcommands.ExitFailure
	}
	if err := writeOutput(c.output, content); err != nil {
		logger.Error("cannot write export", "err", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// export marshals the rows of the ledger, or the part of them selected by path.
func export(ledger *cashlog.Ledger, format, path string) ([]byte, error) {
	rows := slices.Collect(ledger.Totals())
	if rows == nil {
		rows = []cashlog.EntryWithTotal{}
	}
	var value any = rows

	if path != "" {
		// jsonpath works on the generic JSON representation.
		data, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		var jobj any
		if err := json.Unmarshal(data, &jobj); err != nil {
			return nil, err
		}
		if value, err = jsonpath.Get(path, jobj); err != nil {
			return nil, fmt.Errorf("invalid path %q: %w", path, err)
		}
	}

	switch format {
	case "yaml":
		return yaml.Marshal(value)
	default:
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}
