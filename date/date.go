// Package date provides calendar days, the periods that group them, and series of values by
// day.
package date

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the ISO 8601 layout of dates.
const Layout = "2006-01-02"

// Date is a calendar day, with neither a time nor a location. Dates are comparable with ==.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns the date of year, month and day, normalized like time.Date: New(2025, March, 0)
// is the last day of February.
func New(year int, month time.Month, day int) Date {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return Date{y, m, d}
}

// Of returns the day of t, in t's own location.
func Of(t time.Time) Date { return New(t.Date()) }

// Parse reads a date like "2025-07-01". Single digit months and days are accepted.
func Parse(s string) (Date, error) {
	t, err := time.Parse("2006-1-2", strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", s, err)
	}
	return Of(t), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) midnight() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

func (d Date) Year() int             { return d.y }
func (d Date) Month() time.Month     { return d.m }
func (d Date) Day() int              { return d.d }
func (d Date) Weekday() time.Weekday { return d.midnight().Weekday() }

// ISOWeek returns the ISO 8601 year and week number of d.
func (d Date) ISOWeek() (year, week int) { return d.midnight().ISOWeek() }

// IsZero reports whether d is the zero Date, used as an open range boundary.
func (d Date) IsZero() bool { return d == Date{} }

// Compare returns -1, 0 or +1 whether d is before, on, or after x.
func (d Date) Compare(x Date) int { return d.midnight().Compare(x.midnight()) }

func (d Date) Before(x Date) bool { return d.Compare(x) < 0 }
func (d Date) After(x Date) bool  { return d.Compare(x) > 0 }

// Add returns the date days after d, or before it when days is negative.
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

func (d Date) String() string { return d.Format(Layout) }

// Format formats d with a time.Format layout.
func (d Date) Format(layout string) string { return d.midnight().Format(layout) }

// StartOf returns the first day of the period containing d. Weeks start on Monday.
func (d Date) StartOf(p Period) Date {
	switch p {
	case Weekly:
		sinceMonday := (int(d.Weekday()) + 6) % 7
		return d.Add(-sinceMonday)
	case Monthly:
		return New(d.y, d.m, 1)
	case Quarterly:
		return New(d.y, d.m-(d.m-1)%3, 1)
	case Yearly:
		return New(d.y, time.January, 1)
	}
	return d
}

// EndOf returns the last day of the period containing d.
func (d Date) EndOf(p Period) Date {
	switch p {
	case Weekly:
		return d.StartOf(Weekly).Add(6)
	case Monthly:
		return New(d.y, d.m+1, 0)
	case Quarterly:
		return New(d.y, d.m-(d.m-1)%3+3, 0)
	case Yearly:
		return New(d.y, time.December, 31)
	}
	return d
}
