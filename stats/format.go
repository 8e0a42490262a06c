// stats/format.go
package stats

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount with two fixed decimals, thousands
// grouping, a decimal comma and a trailing currency symbol, e.g.
// "1 234,56 €" or "-40,00 €".
func FormatCurrency(amount decimal.Decimal, symbol string) string {
	fixed := amount.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	dot := strings.IndexByte(fixed, '.')
	whole, frac := fixed[:dot], fixed[dot+1:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(c)
	}
	b.WriteByte(',')
	b.WriteString(frac)
	if symbol != "" {
		b.WriteByte(' ')
		b.WriteString(symbol)
	}
	return b.String()
}

// FormatPercentage renders two fixed decimals with an explicit leading "+"
// for non-negative values; negative values keep their own minus sign.
func FormatPercentage(value decimal.Decimal) string {
	s := value.StringFixed(2)
	if !value.IsNegative() {
		s = "+" + s
	}
	return s + "%"
}
