package cashlog

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Amount is a signed decimal monetary value. The zero value is the additive identity.
//
// There is no negative zero: "-0" and "+0" are the same Amount.
type Amount struct {
	value decimal.Decimal
}

// A returns the Amount for value.
func A[T float64 | int | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

// amountRE is the accepted amount grammar: optional sign, digits and an optional fraction.
var amountRE = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)$`)

// ParseAmount parses a signed decimal string like "+5", "-3.1" or "+7.500".
//
// Surrounding blanks are ignored. The sign token has no effect on zero.
func ParseAmount(raw string) (Amount, error) {
	str := strings.TrimSpace(raw)
	if !amountRE.MatchString(str) {
		return Amount{}, &ParseError{Column: ColumnAmount, Value: raw, Err: errNotANumber}
	}
	v, err := decimal.NewFromString(str)
	if err != nil {
		return Amount{}, &ParseError{Column: ColumnAmount, Value: raw, Err: err}
	}
	return Amount{value: v}, nil
}

// MustParseAmount is like ParseAmount but panics on error.
func MustParseAmount(raw string) Amount {
	a, err := ParseAmount(raw)
	if err != nil {
		panic(err.Error())
	}
	return a
}

func (a Amount) Add(b Amount) Amount       { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount       { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Neg() Amount               { return Amount{value: a.value.Neg()} }
func (a Amount) Abs() Amount               { return Amount{value: a.value.Abs()} }
func (a Amount) Equal(b Amount) bool       { return a.value.Equal(b.value) }
func (a Amount) LessThan(b Amount) bool    { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool { return a.value.GreaterThan(b.value) }
func (a Amount) IsZero() bool              { return a.value.IsZero() }
func (a Amount) IsNegative() bool          { return a.value.IsNegative() }
func (a Amount) IsPositive() bool          { return a.value.IsPositive() }
func (a Amount) Decimal() decimal.Decimal  { return a.value }
func (a Amount) Cmp(b Amount) int          { return a.value.Cmp(b.value) }
func (a Amount) String() string            { return a.value.String() }
func (a Amount) InexactFloat64() float64   { return a.value.InexactFloat64() }
func (a Amount) Max(b Amount) Amount       { return Amount{value: decimal.Max(a.value, b.value)} }
func (a Amount) Min(b Amount) Amount       { return Amount{value: decimal.Min(a.value, b.value)} }

// Signed returns the amount with an explicit sign: "+" for zero and positive values.
// Trailing zeros are not kept, "+7.500" is written "+7.5".
func (a Amount) Signed() string {
	if a.value.IsNegative() {
		return a.value.String()
	}
	return "+" + a.value.String()
}

// MarshalJSON writes the amount as a bare JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.value.MarshalJSON()
}

func (a *Amount) UnmarshalJSON(decimalBytes []byte) error {
	return a.value.UnmarshalJSON(decimalBytes)
}

// MarshalYAML writes the amount as a plain YAML number, without going through float64.
func (a Amount) MarshalYAML() (interface{}, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: a.value.String()}, nil
}
