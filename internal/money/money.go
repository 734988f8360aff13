// Package money holds the exact-decimal arithmetic and currency formatting
// shared by the valuation and agreement tools. Monetary values never pass
// through binary floating point, and display rounding is half-up to two
// places everywhere.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Symbol prefixes every monetary string the application produces.
const Symbol = "₹"

// Parse converts raw user input to an exact decimal. Surrounding whitespace
// is tolerated; anything else must be a plain decimal number.
func Parse(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// ParseInt converts raw user input to an int, tolerating surrounding
// whitespace.
func ParseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// RoundHalfUp rounds to two decimal places with ties going away from zero.
func RoundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Format renders d as a currency string: symbol, sign, thousands separators,
// exactly two fractional digits. The value is rounded half-up to two places
// first, so Format(d) and Format(RoundHalfUp(d)) always agree.
func Format(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(Symbol)
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(group(intPart))
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// group inserts a comma every three digits, counting from the right.
func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
