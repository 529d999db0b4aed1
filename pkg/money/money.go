// Package money parses backend-formatted price strings once at the boundary
// and keeps arithmetic in decimal until render time.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value in USD. The zero value is $0.00.
type Amount struct {
	value decimal.Decimal
}

// Parse reduces a currency-formatted display string to its numeric value.
// Anything outside [0-9.] is decoration and gets stripped, so "$1,204.50",
// "USD 1204.50" and "1204.50" all parse to the same amount. Strings with no
// digits parse to zero rather than failing; the storefront treats prices as
// passthrough display data and a missing price must not break totals.
func Parse(price string) Amount {
	var b strings.Builder
	for _, r := range price {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	value, err := decimal.NewFromString(b.String())
	if err != nil {
		return Amount{}
	}
	return Amount{value: value}
}

// FromCents builds an amount from integer minor units.
func FromCents(cents int64) Amount {
	return Amount{value: decimal.NewFromInt(cents).Shift(-2)}
}

// Mul scales the amount by a quantity.
func (a Amount) Mul(qty int) Amount {
	return Amount{value: a.value.Mul(decimal.NewFromInt(int64(qty)))}
}

// Add sums two amounts.
func (a Amount) Add(other Amount) Amount {
	return Amount{value: a.value.Add(other.value)}
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// Equal reports whether two amounts have the same value.
func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}

// String renders the amount as a two-decimal dollar string, e.g. "$30.00".
func (a Amount) String() string {
	return "$" + a.value.StringFixed(2)
}

// Sum totals per-line amounts; the result is independent of item order.
func Sum(amounts ...Amount) Amount {
	total := Amount{}
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	return total
}
