package date

import (
	"fmt"
	"strings"
)

// Period is a calendar granularity used to group entries.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

// periodNames holds the adjective and the noun of each period.
var periodNames = [...][2]string{
	Daily:     {"daily", "day"},
	Weekly:    {"weekly", "week"},
	Monthly:   {"monthly", "month"},
	Quarterly: {"quarterly", "quarter"},
	Yearly:    {"yearly", "year"},
}

func (p Period) valid() bool { return p >= Daily && p <= Yearly }

func (p Period) String() string {
	if !p.valid() {
		return fmt.Sprintf("Period(%d)", int(p))
	}
	return periodNames[p][0]
}

// Unit returns the noun of the period, like "month".
func (p Period) Unit() string {
	if !p.valid() {
		return p.String()
	}
	return periodNames[p][1]
}

// Units lists the period nouns, from the finest to the coarsest.
func Units() []string {
	units := make([]string, len(periodNames))
	for p, names := range periodNames {
		units[p] = names[1]
	}
	return units
}

// ParsePeriod parses a period noun or adjective, like "month" or "Monthly".
func ParsePeriod(s string) (Period, error) {
	for p, names := range periodNames {
		if strings.EqualFold(s, names[0]) || strings.EqualFold(s, names[1]) {
			return Period(p), nil
		}
	}
	return Daily, fmt.Errorf("unknown period %q, want one of %s", s, strings.Join(Units(), ", "))
}
