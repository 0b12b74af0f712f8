package cashlog

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
	"unicode/utf8"
)

var errMissingField = errors.New("missing field")

// validDelimiter reports whether c can separate fields of a ledger row.
func validDelimiter(c rune) bool {
	return c != 0 && c != '"' && c != '\r' && c != '\n' && c != utf8.RuneError && utf8.ValidRune(c)
}

// DecodeLedger reads a ledger from r, detecting its delimiter.
func DecodeLedger(r io.Reader) (*Ledger, error) { return NewDecoder(r).Decode() }

// Decoder reads a ledger from a delimited text stream.
type Decoder struct {
	r         io.Reader
	delimiter rune
}

// NewDecoder returns a Decoder reading from r. The Decoder never closes r.
func NewDecoder(r io.Reader) *Decoder { return &Decoder{r: r} }

// WithDelimiter disables the delimiter detection: rows are split on c, and the header is
// expected on the first line. A zero c restores the detection.
//
// If the stream actually uses another delimiter the header is read as a single column and
// Decode fails with a missing "datetime" column.
func (d *Decoder) WithDelimiter(c rune) *Decoder {
	d.delimiter = c
	return d
}

// Decode reads the whole stream and returns its entries in order.
//
// A structural problem (no header, no delimiter, missing required column) is a *FormatError.
// A field that cannot be converted is a *ParseError locating the row. Read errors are returned
// as is. The first error aborts the decoding: there is no partial ledger.
func (d *Decoder) Decode() (*Ledger, error) {
	br, ok := d.r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(d.r)
	}

	delimiter, consumed := d.delimiter, 0
	if delimiter == 0 {
		dialect, err := DetectDialect(br)
		if err != nil {
			return nil, err
		}
		delimiter = dialect.Delimiter
		if dialect.Directive {
			if _, err := br.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
				return nil, err
			}
			consumed = 1
		}
	}
	if !validDelimiter(delimiter) {
		return nil, &FormatError{Line: consumed, Msg: fmt.Sprintf("invalid delimiter %q", delimiter)}
	}

	cr := csv.NewReader(br)
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1 // rows may omit trailing optional fields
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &FormatError{Line: consumed + 1, Msg: "missing header row"}
	}
	if err != nil {
		return nil, csvError(err, consumed)
	}
	headerLine, _ := cr.FieldPos(0)
	cols, err := newColumns(header, consumed+headerLine)
	if err != nil {
		return nil, err
	}

	ledger := NewLedger(delimiter)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err, consumed)
		}
		line, _ := cr.FieldPos(0)
		entry, err := cols.entry(record)
		if err != nil {
			return nil, atLine(err, consumed+line)
		}
		ledger.Append(entry)
	}
	return ledger, nil
}

// csvError turns a csv.ParseError into a FormatError, other errors come from the underlying
// reader and are returned as is.
func csvError(err error, consumed int) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &FormatError{Line: consumed + pe.Line, Msg: pe.Err.Error()}
	}
	return err
}

// atLine sets the line of a ParseError.
func atLine(err error, line int) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Line = line
	}
	return err
}

// columns holds the position of each known column in the rows, -1 when absent.
type columns struct {
	datetime, amount, desc int
}

// newColumns checks the header found at line and locates the known columns.
func newColumns(header []string, line int) (columns, error) {
	found := make(map[string]int)
	for i, name := range header {
		switch name {
		case ColumnDatetime, ColumnAmount, ColumnDesc, ColumnTotal:
			if _, dup := found[name]; dup {
				return columns{}, &FormatError{Line: line, Column: name, Msg: fmt.Sprintf("duplicate column %q", name)}
			}
			found[name] = i
		}
	}

	cols := columns{desc: -1}
	var ok bool
	if cols.datetime, ok = found[ColumnDatetime]; !ok {
		return columns{}, missingColumn(line, ColumnDatetime)
	}
	if cols.amount, ok = found[ColumnAmount]; !ok {
		return columns{}, missingColumn(line, ColumnAmount)
	}
	if i, ok := found[ColumnDesc]; ok {
		cols.desc = i
	}
	return cols, nil
}

// entry builds the Entry of a data row.
func (c columns) entry(record []string) (Entry, error) {
	if c.datetime >= len(record) {
		return Entry{}, &ParseError{Column: ColumnDatetime, Err: errMissingField}
	}
	when, err := ParseDatetime(record[c.datetime])
	if err != nil {
		return Entry{}, err
	}

	if c.amount >= len(record) {
		return Entry{}, &ParseError{Column: ColumnAmount, Err: errMissingField}
	}
	amount, err := ParseAmount(record[c.amount])
	if err != nil {
		return Entry{}, err
	}

	var desc string
	if c.desc >= 0 && c.desc < len(record) {
		desc = record[c.desc]
	}
	return NewEntry(when, amount, desc), nil
}

// EncodeLedger writes the ledger entries, without totals, using the ledger delimiter.
func EncodeLedger(w io.Writer, l *Ledger) error {
	return NewEncoder(w).WithDelimiter(l.Delimiter()).Encode(l.Entries())
}

// EncodeTotals writes the ledger entries with their running total, using the ledger
// delimiter.
func EncodeTotals(w io.Writer, l *Ledger) error {
	return NewEncoder(w).WithDelimiter(l.Delimiter()).EncodeTotals(l.Totals())
}

// Encoder writes ledger rows to a stream.
type Encoder struct {
	w         io.Writer
	delimiter rune
	directive bool
}

// NewEncoder returns an Encoder writing to w with DefaultDelimiter.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, delimiter: DefaultDelimiter}
}

// WithDelimiter sets the delimiter, a zero c is ignored.
func (e *Encoder) WithDelimiter(c rune) *Encoder {
	if c != 0 {
		e.delimiter = c
	}
	return e
}

// WithDirective makes the Encoder start the stream with a "sep=<c>" line.
//
// The directive is always written when the delimiter occurs in a column name: the quoted
// header would not start with "datetime" and its delimiter could not be detected.
func (e *Encoder) WithDirective(directive bool) *Encoder {
	e.directive = directive
	return e
}

// Encode writes the header "datetime,amount,desc" and one row per entry.
func (e *Encoder) Encode(entries iter.Seq[Entry]) error {
	header := []string{ColumnDatetime, ColumnAmount, ColumnDesc}
	return e.encode(header, func(yield func([]string) bool) {
		for entry := range entries {
			if !yield([]string{FormatDatetime(entry.when), entry.amount.Signed(), entry.desc}) {
				return
			}
		}
	})
}

// EncodeTotals writes the header "datetime,amount,total,desc" and one row per entry.
func (e *Encoder) EncodeTotals(rows iter.Seq[EntryWithTotal]) error {
	header := []string{ColumnDatetime, ColumnAmount, ColumnTotal, ColumnDesc}
	return e.encode(header, func(yield func([]string) bool) {
		for row := range rows {
			if !yield([]string{FormatDatetime(row.when), row.amount.Signed(), row.total.Signed(), row.desc}) {
				return
			}
		}
	})
}

// encode writes the optional directive, the header and the records.
func (e *Encoder) encode(header []string, records iter.Seq[[]string]) error {
	if !validDelimiter(e.delimiter) {
		return fmt.Errorf("invalid delimiter %q", e.delimiter)
	}
	inHeader := slices.ContainsFunc(header, func(name string) bool {
		return strings.ContainsRune(name, e.delimiter)
	})
	if e.directive || inHeader {
		if _, err := fmt.Fprintf(e.w, "sep=%c\n", e.delimiter); err != nil {
			return fmt.Errorf("failed to write directive: %w", err)
		}
	}

	cw := csv.NewWriter(e.w)
	cw.Comma = e.delimiter
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for record := range records {
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}
