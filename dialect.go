package cashlog

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Dialect describes how a ledger stream is delimited.
type Dialect struct {
	Delimiter rune
	Directive bool // The stream starts with a "sep=<c>" line.
}

// Skip returns the number of lines that precede the data rows: the header and, if any, the
// directive line.
func (d Dialect) Skip() int {
	if d.Directive {
		return 2
	}
	return 1
}

// detectSize bytes hold "datetime" and the rune after it, or a whole "sep=<c>" line.
const detectSize = len(ColumnDatetime) + utf8.UTFMax

// DetectDialect finds the delimiter of the stream buffered by br.
//
// If the first line is a "sep=<c>" directive, <c> is the delimiter. Otherwise the first line
// must be the header and start with "datetime": the character right after it is the
// delimiter.
//
// DetectDialect only peeks at the first few bytes of br: nothing is consumed.
func DetectDialect(br *bufio.Reader) (Dialect, error) {
	head, err := br.Peek(detectSize)
	if err != nil && !errors.Is(err, io.EOF) {
		return Dialect{}, err
	}
	if len(head) == 0 {
		return Dialect{}, &FormatError{Msg: "empty ledger: no header found"}
	}

	if c, ok := directive(head); ok {
		return Dialect{Delimiter: c, Directive: true}, nil
	}

	if !bytes.HasPrefix(head, []byte(ColumnDatetime)) {
		return Dialect{}, &FormatError{Line: 1, Msg: fmt.Sprintf("content must start with %q or a \"sep=<c>\" line, got %q", ColumnDatetime, firstLine(head))}
	}
	c, size := utf8.DecodeRune(head[len(ColumnDatetime):])
	if size == 0 || c == utf8.RuneError || c == '\r' || c == '\n' {
		return Dialect{}, &FormatError{Line: 1, Msg: fmt.Sprintf("cannot determine the delimiter from header %q", firstLine(head))}
	}
	return Dialect{Delimiter: c}, nil
}

// directive returns the delimiter declared by a "sep=<c>" line at the start of head.
func directive(head []byte) (rune, bool) {
	rest, ok := bytes.CutPrefix(head, []byte("sep="))
	if !ok {
		return 0, false
	}
	c, size := utf8.DecodeRune(rest)
	if size == 0 || c == utf8.RuneError || c == '\r' || c == '\n' {
		return 0, false
	}
	switch eol := string(rest[size:]); {
	case eol == "", eol == "\r", strings.HasPrefix(eol, "\n"), strings.HasPrefix(eol, "\r\n"):
		return c, true
	}
	return 0, false
}

// firstLine returns the part of head before the first line terminator.
func firstLine(head []byte) string {
	line, _, _ := bytes.Cut(head, []byte("\n"))
	return string(bytes.TrimSuffix(line, []byte("\r")))
}
