// Package money parses and formats statement amounts. Statements handled
// here are single-currency (INR), so arithmetic stays in shopspring/decimal
// and go-money is used for locale-correct display strings.
package money

import (
	"fmt"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the ISO-4217 code used for display formatting.
const DefaultCurrency = "INR"

// ParseAmount parses a statement amount string into a decimal.
// Accepts thousands separators and a leading currency marker,
// e.g. "1,234.50" or "Rs. 1,234.50".
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	for _, sym := range []string{"₹", "Rs.", "Rs", "INR"} {
		cleaned = strings.ReplaceAll(cleaned, sym, "")
	}
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// Format renders a decimal amount as a display string with the currency
// symbol and grouping, e.g. "₹1,234.50".
func Format(d decimal.Decimal) string {
	currency := gomoney.GetCurrency(DefaultCurrency)
	minor := d.Mul(decimal.New(1, int32(currency.Fraction))).Round(0).IntPart()
	return gomoney.New(minor, DefaultCurrency).Display()
}

// FormatPlain renders a decimal amount with two fixed places and no
// currency symbol, the form used in report columns.
func FormatPlain(d decimal.Decimal) string {
	return d.StringFixed(2)
}
