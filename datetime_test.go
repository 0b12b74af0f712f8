package cashlog

import (
	"errors"
	"testing"
	"time"
)

func TestParseDatetime(t *testing.T) {
	plus2 := time.FixedZone("", 2*3600)
	tests := []struct {
		input string
		want  time.Time
		err   bool
	}{
		{"2020-01-01 00:00:00+00:00", day(2020, time.January, 1), false},
		{"2020-01-01T00:00:00Z", day(2020, time.January, 1), false},
		{"2020-01-01 00:00:00Z", day(2020, time.January, 1), false},
		{"  2020-01-01 00:00:00+00:00\t", day(2020, time.January, 1), false},
		{"2020-06-30 18:45:10+02:00", time.Date(2020, time.June, 30, 18, 45, 10, 0, plus2), false},
		{"2020-06-30T18:45:10+0200", time.Date(2020, time.June, 30, 18, 45, 10, 0, plus2), false},
		{"2020-06-30 18:45+02:00", time.Date(2020, time.June, 30, 18, 45, 0, 0, plus2), false},
		{"2020-06-30 18:45:10.250+02:00", time.Date(2020, time.June, 30, 18, 45, 10, 250_000_000, plus2), false},
		{"2020-01-01 00:00:00", time.Time{}, true}, // no offset
		{"2020-01-01", time.Time{}, true},
		{"01/02/2020 00:00:00+00:00", time.Time{}, true},
		{"2020-13-01 00:00:00+00:00", time.Time{}, true},
		{"not a date", time.Time{}, true},
		{"", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDatetime(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParseDatetime(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if tt.err {
				var pe *ParseError
				if !errors.As(err, &pe) || pe.Column != ColumnDatetime || pe.Value != tt.input {
					t.Errorf("ParseDatetime(%q) error = %#v, want a *ParseError on column %q", tt.input, err, ColumnDatetime)
				}
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDatetime(%q) = %v, want %v", tt.input, got, tt.want)
			}
			_, gotOffset := got.Zone()
			_, wantOffset := tt.want.Zone()
			if gotOffset != wantOffset {
				t.Errorf("ParseDatetime(%q) offset = %d, want %d", tt.input, gotOffset, wantOffset)
			}
		})
	}
}

func TestFormatDatetime(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{day(2020, time.January, 1), "2020-01-01 00:00:00+00:00"},
		{time.Date(2020, time.June, 30, 18, 45, 10, 0, time.FixedZone("", -5*3600-1800)), "2020-06-30 18:45:10-05:30"},
		{time.Date(2020, time.June, 30, 18, 45, 10, 250_000_000, time.UTC), "2020-06-30 18:45:10.25+00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := FormatDatetime(tt.in)
			if got != tt.want {
				t.Errorf("FormatDatetime(%v) = %q, want %q", tt.in, got, tt.want)
			}
			back, err := ParseDatetime(got)
			if err != nil {
				t.Fatalf("ParseDatetime(%q) unexpected error: %v", got, err)
			}
			if !back.Equal(tt.in) {
				t.Errorf("ParseDatetime(FormatDatetime(%v)) = %v", tt.in, back)
			}
		})
	}
}
