package cashlog

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestNewLedger(t *testing.T) {
	entries := gifts()
	l := NewLedger(0, entries...)

	if got := l.Delimiter(); got != DefaultDelimiter {
		t.Errorf("Delimiter() = %q, want %q", got, DefaultDelimiter)
	}
	if got := l.Len(); got != len(entries) {
		t.Fatalf("Len() = %d, want %d", got, len(entries))
	}

	// The ledger owns a copy of its entries.
	entries[0] = NewEntry(day(1999, time.December, 31), A(1), "changed")
	if got := l.At(0).Desc(); got != "First gift" {
		t.Errorf("At(0).Desc() = %q after changing the argument, want %q", got, "First gift")
	}

	if got := NewLedger('|').Delimiter(); got != '|' {
		t.Errorf("NewLedger('|').Delimiter() = %q, want '|'", got)
	}
}

func TestLedger_Append(t *testing.T) {
	l := NewLedger(';')
	want := gifts()
	l.Append(want[:2]...)
	l.Append(want[2:]...)

	assertEntries(t, slices.Collect(l.Entries()), want)

	for i, e := range l.All() {
		if !e.Equal(l.At(i)) {
			t.Errorf("All() at %d = %v, want %v", i, e, l.At(i))
		}
	}
}

func TestLedger_Totals(t *testing.T) {
	l := NewLedger(0, gifts()...)
	var got []string
	for e := range l.Totals() {
		got = append(got, e.Total().String())
	}
	want := []string{"5", "12.5", "9.4", "9.4", "9.4"}
	if !slices.Equal(got, want) {
		t.Errorf("Totals() = %v, want %v", got, want)
	}
}

func TestEntry_MarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		entry any
		want  string
	}{
		{
			name:  "entry",
			entry: NewEntry(day(2020, time.January, 1), MustParseAmount("+5.10"), "gift"),
			want:  `{"datetime":"2020-01-01 00:00:00+00:00","amount":5.1,"desc":"gift"}`,
		},
		{
			name:  "no description",
			entry: NewEntry(day(2020, time.January, 1), A(-2), ""),
			want:  `{"datetime":"2020-01-01 00:00:00+00:00","amount":-2}`,
		},
		{
			name:  "zero total",
			entry: slices.Collect(ComputeTotals(slices.Values([]Entry{NewEntry(day(2020, time.January, 1), A(0), "")})))[0],
			want:  `{"datetime":"2020-01-01 00:00:00+00:00","amount":0,"total":0}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.entry)
			if err != nil {
				t.Fatalf("json.Marshal() unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("json.Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEntry_MarshalYAML(t *testing.T) {
	entry := NewEntry(day(2020, time.January, 1), MustParseAmount("+5.10"), "gift")
	total := slices.Collect(ComputeTotals(slices.Values([]Entry{NewEntry(day(2020, time.January, 1), A(0), "")})))[0]

	tests := []struct {
		name    string
		value   any
		want    []string
		wantNot []string
	}{
		{"entry", entry, []string{"datetime: ", "2020-01-01 00:00:00+00:00", "amount: 5.1\n", "desc: gift\n"}, []string{"total"}},
		{"zero total", total, []string{"amount: 0\n", "total: 0\n"}, []string{"desc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := yaml.Marshal(tt.value)
			if err != nil {
				t.Fatalf("yaml.Marshal() unexpected error: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(string(got), want) {
					t.Errorf("yaml.Marshal() = %q, missing %q", got, want)
				}
			}
			for _, unwanted := range tt.wantNot {
				if strings.Contains(string(got), unwanted) {
					t.Errorf("yaml.Marshal() = %q, unexpected %q", got, unwanted)
				}
			}
		})
	}
}
