package cashlog

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestDetectDialect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Dialect
		skip  int
	}{
		{"comma", "datetime,amount,desc\n", Dialect{Delimiter: ','}, 1},
		{"pipe", "datetime|amount|desc\n", Dialect{Delimiter: '|'}, 1},
		{"equal", "datetime=amount=desc\n", Dialect{Delimiter: '='}, 1},
		{"tab", "datetime\tamount\tdesc\n", Dialect{Delimiter: '\t'}, 1},
		{"crlf", "datetime;amount;desc\r\n", Dialect{Delimiter: ';'}, 1},
		{"no newline", "datetime;amount", Dialect{Delimiter: ';'}, 1},
		{"multibyte", "datetime§amount§desc\n", Dialect{Delimiter: '§'}, 1},
		{"directive", "sep=/\ndatetime/amount/desc\n", Dialect{Delimiter: '/', Directive: true}, 2},
		{"directive crlf", "sep=;\r\ndatetime;amount\r\n", Dialect{Delimiter: ';', Directive: true}, 2},
		{"directive only", "sep=;", Dialect{Delimiter: ';', Directive: true}, 2},
		{"directive wins", "sep=|\ndatetime,amount|desc\n", Dialect{Delimiter: '|', Directive: true}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			br := bufio.NewReader(strings.NewReader(tt.input))
			got, err := DetectDialect(br)
			if err != nil {
				t.Fatalf("DetectDialect() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectDialect() = %+v, want %+v", got, tt.want)
			}
			if got.Skip() != tt.skip {
				t.Errorf("Skip() = %d, want %d", got.Skip(), tt.skip)
			}

			// Detection must not consume anything.
			rest, err := io.ReadAll(br)
			if err != nil {
				t.Fatalf("ReadAll() unexpected error: %v", err)
			}
			if string(rest) != tt.input {
				t.Errorf("DetectDialect() consumed input, remaining %q, want %q", rest, tt.input)
			}
		})
	}
}

func TestDetectDialect_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no datetime", "amount,datetime,desc\n"},
		{"uppercase", "Datetime,amount\n"},
		{"directive case sensitive", "SEP=;\ndatetime;amount\n"},
		{"directive two chars", "sep=;;\ndatetime;amount\n"},
		{"datetime alone", "datetime\n2020-01-01 00:00:00+00:00\n"},
		{"leading blank line", "\ndatetime,amount\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DetectDialect(bufio.NewReader(strings.NewReader(tt.input)))
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Errorf("DetectDialect(%q) error = %v, want a *FormatError", tt.input, err)
			}
		})
	}
}

func TestDetectDialect_LongHeader(t *testing.T) {
	// Only the start of the header is needed, however long it is.
	header := "datetime;" + strings.Repeat("x;", 5000) + "\n"
	br := bufio.NewReaderSize(strings.NewReader(header), 16)
	got, err := DetectDialect(br)
	if err != nil {
		t.Fatalf("DetectDialect() unexpected error: %v", err)
	}
	if got.Delimiter != ';' {
		t.Errorf("DetectDialect() = %q, want ';'", got.Delimiter)
	}
}

func TestDecodeLedger_LongHeader(t *testing.T) {
	extra := make([]string, 1000)
	for i := range extra {
		extra[i] = "column" + strings.Repeat("x", 10)
	}
	input := "datetime,amount,desc," + strings.Join(extra, ",") + "\n2020-01-01 00:00:00+00:00,+5,gift\n"
	ledger, err := DecodeLedger(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeLedger() unexpected error: %v", err)
	}
	if ledger.Len() != 1 || ledger.At(0).Desc() != "gift" {
		t.Errorf("DecodeLedger() = %d entries, want the gift", ledger.Len())
	}
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestDetectDialect_ReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := DetectDialect(bufio.NewReader(failingReader{boom}))
	if !errors.Is(err, boom) {
		t.Errorf("DetectDialect() error = %v, want %v", err, boom)
	}
}
