package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"0", "0,00 €"},
		{"150.5", "150,50 €"},
		{"1234.56", "1 234,56 €"},
		{"1234567.891", "1 234 567,89 €"},
		{"-40", "-40,00 €"},
		{"-1234.5", "-1 234,50 €"},
		{"999", "999,00 €"},
		{"1000", "1 000,00 €"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatCurrency(dec(tc.in), "€"), "amount %s", tc.in)
	}
}

func TestFormatCurrencyNoSymbol(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1 234,56", FormatCurrency(dec("1234.56"), ""))
}

func TestFormatPercentage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"11.05", "+11.05%"},
		{"0", "+0.00%"},
		{"-25", "-25.00%"},
		{"50.125", "+50.13%"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatPercentage(dec(tc.in)), "value %s", tc.in)
	}
}
