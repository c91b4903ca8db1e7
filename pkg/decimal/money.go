package decimal

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var (
	twelve      = decimal.NewFromInt(12)
	tenThousand = decimal.NewFromInt(10_000)
)

// Won represents an amount of Korean won. Amounts carry full decimal precision;
// rounding to whole won happens only for display.
type Won struct {
	decimal.Decimal
}

// NewWon creates a Won amount from an integer
func NewWon(value int64) Won {
	return Won{decimal.NewFromInt(value)}
}

// NewWonFromDecimal creates a Won amount from a decimal.Decimal
func NewWonFromDecimal(d decimal.Decimal) Won {
	return Won{d}
}

// NewWonFromString parses a Won amount, accepting thousands separators and a trailing 원.
func NewWonFromString(value string) (Won, error) {
	clean := strings.TrimSpace(value)
	clean = strings.TrimSuffix(clean, "원")
	clean = strings.TrimPrefix(clean, "₩")
	clean = strings.ReplaceAll(clean, ",", "")
	d, err := decimal.NewFromString(strings.TrimSpace(clean))
	if err != nil {
		return Won{}, err
	}
	return Won{d}, nil
}

// FromManwon converts an amount in 만원 (units of 10,000 won) to won.
func FromManwon(manwon decimal.Decimal) Won {
	return Won{manwon.Mul(tenThousand)}
}

// Manwon expresses the amount in 만원.
func (w Won) Manwon() decimal.Decimal {
	return w.Decimal.Div(tenThousand)
}

// Round rounds to whole won (half away from zero)
func (w Won) Round() Won {
	return Won{w.Decimal.Round(0)}
}

// Monthly converts an annual amount to monthly
func (w Won) Monthly() Won {
	return Won{w.Decimal.Div(twelve)}
}

// Annual converts a monthly amount to annual
func (w Won) Annual() Won {
	return Won{w.Decimal.Mul(twelve)}
}

// Add adds another amount
func (w Won) Add(other Won) Won {
	return Won{w.Decimal.Add(other.Decimal)}
}

// Sub subtracts another amount
func (w Won) Sub(other Won) Won {
	return Won{w.Decimal.Sub(other.Decimal)}
}

// String returns the amount rounded to whole won without separators
func (w Won) String() string {
	return w.Decimal.StringFixed(0)
}

// Grouped returns the rounded amount with thousands separators, e.g. 48,000,000.
func (w Won) Grouped() string {
	return humanize.Comma(w.Decimal.Round(0).IntPart())
}

// Format returns the amount for display, e.g. 48,000,000원.
func (w Won) Format() string {
	return w.Grouped() + "원"
}

// FormatWon formats a raw decimal as grouped whole won.
func FormatWon(d decimal.Decimal) string {
	return Won{d}.Format()
}
