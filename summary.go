package cashlog

import (
	"iter"

	"github.com/etnz/cashlog/date"
)

// PeriodSummary is the activity of consecutive ledger rows within one calendar range.
type PeriodSummary struct {
	Range   date.Range
	Count   int    // Number of entries.
	Inflow  Amount // Sum of positive amounts.
	Outflow Amount // Sum of negative amounts, zero or negative.
	Closing Amount // Running total after the last entry.
}

// Net returns the change of the running total over the period.
func (s PeriodSummary) Net() Amount { return s.Inflow.Add(s.Outflow) }

// Opening returns the running total before the first entry of the period.
func (s PeriodSummary) Opening() Amount { return s.Closing.Sub(s.Net()) }

// Summarize groups consecutive rows by the calendar range of the given period their datetime
// falls in, in the datetime's own UTC offset.
//
// Rows are never reordered: if a row goes back to an earlier range, a new summary starts.
func Summarize(rows iter.Seq[EntryWithTotal], period date.Period) []PeriodSummary {
	var summaries []PeriodSummary
	for row := range rows {
		r := date.NewRange(date.Of(row.when), period)
		if n := len(summaries); n == 0 || summaries[n-1].Range != r {
			summaries = append(summaries, PeriodSummary{Range: r})
		}
		s := &summaries[len(summaries)-1]
		s.Count++
		if row.amount.IsNegative() {
			s.Outflow = s.Outflow.Add(row.amount)
		} else {
			s.Inflow = s.Inflow.Add(row.amount)
		}
		s.Closing = row.total
	}
	return summaries
}

// DailyTotals returns the running total at the end of each calendar day found in rows.
//
// When the rows of a day are not contiguous, the last one in input order wins.
func DailyTotals(rows iter.Seq[EntryWithTotal]) *date.History[Amount] {
	h := new(date.History[Amount])
	for row := range rows {
		h.Append(date.Of(row.when), row.total)
	}
	return h
}
