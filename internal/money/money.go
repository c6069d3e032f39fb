// Package money converts between ledger amounts, which are whole minor units,
// and the decimal major-unit strings people type and read.
package money

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

var maxMinor = fromUint64(math.MaxUint64)

// ParseMinor parses a major-unit amount such as "12.34" into minor units for
// a currency with the given exponent. Amounts must be non-negative, fit in a
// uint64 and not carry more fractional digits than the exponent allows.
func ParseMinor(s string, exponent int32) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("amount is empty")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("amount %q is negative", s)
	}

	minor := d.Shift(exponent)
	if !minor.Equal(minor.Truncate(0)) {
		return 0, fmt.Errorf("amount %q has more than %d decimal places", s, exponent)
	}
	if minor.GreaterThan(maxMinor) {
		return 0, fmt.Errorf("amount %q is too large", s)
	}

	return minor.BigInt().Uint64(), nil
}

// FormatMinor renders minor units as a major-unit string with exactly
// exponent decimal places.
func FormatMinor(amount uint64, exponent int32) string {
	return fromUint64(amount).Shift(-exponent).StringFixed(exponent)
}

// Format is FormatMinor followed by the currency code, e.g. "12.34 USD".
func Format(amount uint64, exponent int32, code string) string {
	if code == "" {
		return FormatMinor(amount, exponent)
	}
	return FormatMinor(amount, exponent) + " " + code
}

func fromUint64(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}
