package networth

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// USD is the reporting currency. Every report value is converted to it.
const USD = "USD"

// ToUSD converts a value in the given currency to USD using the snapshot's
// rate table. A rate is expressed as "1 USD = rate units of the currency", so
// the conversion divides. USD values pass through untouched. The result keeps
// full precision; rounding is a presentation concern.
func ToUSD(value decimal.Decimal, currency string, rates map[string]decimal.Decimal) (decimal.Decimal, error) {
	if currency == USD {
		return value, nil
	}
	rate, ok := rates[currency]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: no rate for %q", ErrMissingRate, currency)
	}
	if !rate.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: unusable rate %s for %q", ErrMissingRate, rate, currency)
	}
	return value.Div(rate), nil
}
