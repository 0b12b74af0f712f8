package date

import "fmt"

// Range is a span of days, both ends included. A zero end leaves that side open.
type Range struct{ From, To Date }

// NewRange returns the range of the period containing d.
func NewRange(d Date, p Period) Range { return Range{From: d.StartOf(p), To: d.EndOf(p)} }

// Contains reports whether d is within r.
func (r Range) Contains(d Date) bool {
	if !r.From.IsZero() && d.Before(r.From) {
		return false
	}
	return r.To.IsZero() || !d.After(r.To)
}

// Period returns the period r spans exactly, the finest one when several match.
func (r Range) Period() (Period, bool) {
	for p := Daily; p <= Yearly; p++ {
		if NewRange(r.From, p) == r {
			return p, true
		}
	}
	return Daily, false
}

// Identifier returns the short name of r: "2020-01-05", "2020-W02", "2020-01", "2020-Q1" or
// "2020" for calendar periods, and "2020-01-05..2020-02-10" otherwise.
func (r Range) Identifier() string {
	p, ok := r.Period()
	if !ok {
		return fmt.Sprintf("%s..%s", r.From, r.To)
	}
	switch p {
	case Weekly:
		year, week := r.From.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case Monthly:
		return r.From.Format("2006-01")
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", r.From.Year(), (r.From.Month()-1)/3+1)
	case Yearly:
		return r.From.Format("2006")
	}
	return r.From.String()
}
