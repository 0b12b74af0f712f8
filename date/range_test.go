package date

import (
	"testing"
	"time"
)

func TestRange_Identifier(t *testing.T) {
	tests := []struct {
		name string
		in   Range
		want string
	}{
		{"day", NewRange(New(2025, time.September, 8), Daily), "2025-09-08"},
		{"week", NewRange(New(2025, time.September, 10), Weekly), "2025-W37"},
		{"early week", NewRange(New(2025, time.January, 6), Weekly), "2025-W02"},
		{"week across years", NewRange(New(2025, time.January, 1), Weekly), "2025-W01"},
		{"month", NewRange(New(2025, time.September, 30), Monthly), "2025-09"},
		{"quarter", NewRange(New(2025, time.August, 1), Quarterly), "2025-Q3"},
		{"year", NewRange(New(2025, time.March, 3), Yearly), "2025"},
		{"custom", Range{From: New(2025, time.September, 2), To: New(2025, time.September, 10)}, "2025-09-02..2025-09-10"},
		{"two years", Range{From: New(2025, time.January, 1), To: New(2026, time.December, 31)}, "2025-01-01..2026-12-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Identifier(); got != tt.want {
				t.Errorf("Identifier() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRange_Period(t *testing.T) {
	tests := []struct {
		in     Range
		want   Period
		wantOK bool
	}{
		{NewRange(New(2024, time.February, 29), Daily), Daily, true},
		{NewRange(New(2024, time.February, 29), Monthly), Monthly, true},
		{NewRange(New(2024, time.February, 29), Quarterly), Quarterly, true},
		{Range{From: New(2024, time.February, 1), To: New(2024, time.February, 7)}, Daily, false},
	}
	for _, tt := range tests {
		got, ok := tt.in.Period()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("%v.Period() = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRange_Contains(t *testing.T) {
	month := NewRange(New(2024, time.February, 10), Monthly)
	tests := []struct {
		name string
		r    Range
		in   Date
		want bool
	}{
		{"first day", month, New(2024, time.February, 1), true},
		{"last day", month, New(2024, time.February, 29), true},
		{"day before", month, New(2024, time.January, 31), false},
		{"day after", month, New(2024, time.March, 1), false},
		{"open start", Range{To: New(2024, time.March, 1)}, New(1999, time.January, 1), true},
		{"open end", Range{From: New(2024, time.March, 1)}, New(2099, time.January, 1), true},
		{"open end, before start", Range{From: New(2024, time.March, 1)}, New(2024, time.February, 29), false},
		{"fully open", Range{}, New(2024, time.March, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Contains(tt.in); got != tt.want {
				t.Errorf("%v.Contains(%v) = %v, want %v", tt.r, tt.in, got, tt.want)
			}
		})
	}
}
