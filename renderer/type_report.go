package renderer

import (
	"iter"
	"slices"
	"strconv"

	"github.com/etnz/cashlog"
	"github.com/etnz/cashlog/date"
)

// ReportOptions holds configuration for building a report.
type ReportOptions struct {
	Title    string
	Source   string      // Name of the ledger file, if any.
	Currency string      // ISO 4217 code used to format amounts, plain numbers if empty.
	Period   date.Period // Granularity of the period summary.
	Range    date.Range  // Only entries within Range are reported. Zero boundaries are open.
	Amounts  bool        // Render the amounts section.
	Totals   bool        // Render the totals section.
}

// Table is a markdown table.
type Table struct {
	Header    []string
	Alignment []string
	Rows      [][]string
}

func newTable(header ...string) *Table {
	t := &Table{Header: header}
	for i := range header {
		if i == 0 {
			t.Alignment = append(t.Alignment, ":---")
		} else {
			t.Alignment = append(t.Alignment, "---:")
		}
	}
	return t
}

// Report is the rendered view of the rows of a ledger with their running total.
type Report struct {
	Title  string
	AsOf   string
	Source string

	Count   int
	First   string
	Last    string
	Opening string
	Inflow  string
	Outflow string
	Net     string
	Closing string

	Amounts    *Table // nil when not requested.
	Totals     *Table // nil when not requested.
	PeriodName string
	Periods    *Table
}

// NewReport builds a Report out of rows. When neither the amounts nor the totals section is
// requested, both are rendered.
func NewReport(rows iter.Seq[cashlog.EntryWithTotal], opts ReportOptions) *Report {
	f := Formatter{Currency: opts.Currency}
	if opts.Title == "" {
		opts.Title = "Ledger Report"
	}
	if !opts.Amounts && !opts.Totals {
		opts.Amounts, opts.Totals = true, true
	}

	var kept []cashlog.EntryWithTotal
	for row := range rows {
		if opts.Range.Contains(date.Of(row.When())) {
			kept = append(kept, row)
		}
	}

	r := &Report{
		Title:      opts.Title,
		AsOf:       Now().Format("2006-01-02 15:04:05"),
		Source:     opts.Source,
		Count:      len(kept),
		First:      "-",
		Last:       "-",
		PeriodName: capitalize(opts.Period.String()),
	}

	var opening, inflow, outflow, closing cashlog.Amount
	if len(kept) > 0 {
		first, last := kept[0], kept[len(kept)-1]
		r.First = cashlog.FormatDatetime(first.When())
		r.Last = cashlog.FormatDatetime(last.When())
		opening = first.Total().Sub(first.Amount())
		closing = last.Total()
	}
	for _, row := range kept {
		if row.Amount().IsNegative() {
			outflow = outflow.Add(row.Amount())
		} else {
			inflow = inflow.Add(row.Amount())
		}
	}
	r.Opening = f.Format(opening)
	r.Inflow = f.Signed(inflow)
	r.Outflow = f.Signed(outflow)
	r.Net = f.Signed(inflow.Add(outflow))
	r.Closing = f.Format(closing)

	if opts.Amounts {
		r.Amounts = amountsTable(kept, f)
	}
	if opts.Totals {
		r.Totals = totalsTable(kept, f)
	}
	r.Periods = periodsTable(kept, opts.Period, f)
	return r
}

// amountsTable lists every entry with a bar proportional to its amount.
func amountsTable(rows []cashlog.EntryWithTotal, f Formatter) *Table {
	var peak cashlog.Amount
	for _, row := range rows {
		peak = peak.Max(row.Amount().Abs())
	}

	t := newTable("Datetime", "Amount", "", "Description")
	t.Alignment[2] = ":---"
	for _, row := range rows {
		t.Rows = append(t.Rows, []string{
			cashlog.FormatDatetime(row.When()),
			f.Signed(row.Amount()),
			bar(row.Amount(), peak),
			cell(row.Desc()),
		})
	}
	return t
}

// totalsTable lists the closing total of each day, the steps of the running total.
func totalsTable(rows []cashlog.EntryWithTotal, f Formatter) *Table {
	daily := cashlog.DailyTotals(slices.Values(rows))
	var peak cashlog.Amount
	for _, total := range daily.Values() {
		peak = peak.Max(total.Abs())
	}

	t := newTable("Date", "Total", "")
	t.Alignment[2] = ":---"
	for day, total := range daily.Values() {
		t.Rows = append(t.Rows, []string{day.String(), f.Format(total), bar(total, peak)})
	}
	return t
}

// periodsTable summarizes the activity of each period.
func periodsTable(rows []cashlog.EntryWithTotal, period date.Period, f Formatter) *Table {
	t := newTable("Period", "Entries", "Opening", "Inflow", "Outflow", "Net", "Closing")
	for _, s := range cashlog.Summarize(slices.Values(rows), period) {
		t.Rows = append(t.Rows, []string{
			s.Range.Identifier(),
			strconv.Itoa(s.Count),
			f.Format(s.Opening()),
			f.Signed(s.Inflow),
			f.Signed(s.Outflow),
			f.Signed(s.Net()),
			f.Format(s.Closing),
		})
	}
	return t
}
