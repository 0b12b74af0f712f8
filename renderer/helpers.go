package renderer

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/cashlog"
)

// barWidth is the number of cells of the longest bar.
const barWidth = 20

// Formatter writes amounts for display.
type Formatter struct {
	Currency string // ISO 4217 code, empty for plain numbers.
}

// currency returns the money currency, nil if unknown or not set.
func (f Formatter) currency() *money.Currency {
	if f.Currency == "" {
		return nil
	}
	return money.GetCurrency(f.Currency)
}

// Format returns the amount in the currency format, or as a plain number.
func (f Formatter) Format(a cashlog.Amount) string {
	cur := f.currency()
	if cur == nil {
		return a.String()
	}
	minor := a.Decimal().Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// Signed is like Format with an explicit "+" sign on zero and positive amounts.
func (f Formatter) Signed(a cashlog.Amount) string {
	if a.IsNegative() {
		return f.Format(a)
	}
	return "+" + f.Format(a)
}

// bar draws the magnitude of a relative to peak, full blocks for positive values, light shades
// for negative ones.
func bar(a, peak cashlog.Amount) string {
	if peak.IsZero() {
		return ""
	}
	n := int(a.Abs().Decimal().Div(peak.Abs().Decimal()).Mul(cashlog.A(barWidth).Decimal()).Round(0).IntPart())
	if a.IsNegative() {
		return strings.Repeat("░", n)
	}
	return strings.Repeat("█", n)
}

// cell escapes a free-form text so that it fits in a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// capitalize upper cases the first letter of an ASCII word.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
