package cashlog

import (
	"errors"
	"fmt"
)

// Column names known to the ledger format.
const (
	ColumnDatetime = "datetime"
	ColumnAmount   = "amount"
	ColumnTotal    = "total"
	ColumnDesc     = "desc"
)

var errNotANumber = errors.New("not a signed decimal number")

// FormatError is returned when the structure of a ledger stream is wrong: no recognizable
// header, no delimiter, or a required column missing from the header.
type FormatError struct {
	Line   int    // 1-based line where the problem was found, 0 if unknown.
	Column string // The missing or duplicated column, if the error is about one.
	Msg    string
}

func (err *FormatError) Error() string {
	if err.Line > 0 {
		return fmt.Sprintf("line %d: %s", err.Line, err.Msg)
	}
	return err.Msg
}

// missingColumn returns the FormatError for a required column absent from the header.
func missingColumn(line int, column string) *FormatError {
	return &FormatError{Line: line, Column: column, Msg: fmt.Sprintf("missing required column %q", column)}
}

// ParseError is returned when a field cannot be converted to its typed value.
type ParseError struct {
	Line   int    // 1-based line of the offending row, 0 when parsing a lone field.
	Column string // Column of the offending field.
	Value  string // Raw field value.
	Err    error  // Underlying cause.
}

func (err *ParseError) Error() string {
	msg := fmt.Sprintf("invalid %s %q", err.Column, err.Value)
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	if err.Line > 0 {
		return fmt.Sprintf("line %d: %s", err.Line, msg)
	}
	return msg
}

func (err *ParseError) Unwrap() error { return err.Err }
