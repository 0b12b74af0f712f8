package cmd

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/etnz/cashlog"
)

// standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// isStd reports whether name designates the standard input or output.
func isStd(name string) bool { return name == "" || name == "-" }

// displayName returns a name for the file suitable for messages.
func displayName(name string) string {
	if isStd(name) {
		return "<stdin>"
	}
	return name
}

// openInput opens the named file, or the standard input for "" and "-".
func openInput(name string) (io.ReadCloser, error) {
	if isStd(name) {
		return io.NopCloser(stdin), nil
	}
	return os.Open(name)
}

// writeOutput writes content to the named file or to the standard output.
//
// A named file is replaced at once by renaming a temporary file of the same directory: it is
// never left partially written.
func writeOutput(name string, content []byte) error {
	if isStd(name) {
		if _, err := stdout.Write(content); err != nil {
			return fmt.Errorf("failed to write <stdout>: %w", err)
		}
		return nil
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(name); err == nil {
		mode = info.Mode().Perm()
	}
	tmp, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), name)
}

// inputFlags are the flags of the subcommands reading a ledger.
type inputFlags struct {
	delimiter string
}

func (p *inputFlags) SetFlags(f *flag.FlagSet, cfg *Config) {
	f.StringVar(&p.delimiter, "d", formatDelimiter(cfg.Delimiter), "Input delimiter ('tab' and 'space' are accepted). Detected from the first line if empty.")
}

// decode reads the ledger in the named file, or in the standard input.
func (p *inputFlags) decode(name string) (*cashlog.Ledger, error) {
	delimiter, err := parseDelimiter(p.delimiter)
	if err != nil {
		return nil, err
	}
	r, err := openInput(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	logger.Debug("reading ledger", "file", displayName(name), "delimiter", formatDelimiter(delimiter))
	ledger, err := cashlog.NewDecoder(r).WithDelimiter(delimiter).Decode()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", displayName(name), err)
	}
	logger.Debug("ledger read", "file", displayName(name), "entries", ledger.Len(), "delimiter", formatDelimiter(ledger.Delimiter()))
	return ledger, nil
}

// outputFlags are the flags of the subcommands writing a ledger.
type outputFlags struct {
	delimiter string
	directive bool
	output    string
}

func (p *outputFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.delimiter, "od", "", "Output delimiter. Defaults to the input delimiter.")
	f.BoolVar(&p.directive, "sep", false, "Start the output with a 'sep=<c>' line.")
	f.StringVar(&p.output, "o", "-", "Output file, '-' for the standard output.")
}

// encode writes the ledger entries, with their running total if totals is set. Nothing is
// written if the entries cannot be encoded.
func (p *outputFlags) encode(ledger *cashlog.Ledger, totals bool) error {
	delimiter, err := parseDelimiter(p.delimiter)
	if err != nil {
		return err
	}
	if delimiter == 0 {
		delimiter = ledger.Delimiter()
	}

	var buf bytes.Buffer
	enc := cashlog.NewEncoder(&buf).WithDelimiter(delimiter).WithDirective(p.directive)
	if totals {
		err = enc.EncodeTotals(ledger.Totals())
	} else {
		err = enc.Encode(ledger.Entries())
	}
	if err != nil {
		return err
	}
	if err := writeOutput(p.output, buf.Bytes()); err != nil {
		return err
	}
	if !isStd(p.output) {
		logger.Info("ledger written", "file", p.output, "entries", ledger.Len())
	}
	return nil
}
