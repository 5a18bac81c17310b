package utils_test

import (
	"testing"

	"github.com/daftari-app/daftari/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	testCases := []struct {
		name     string
		amount   decimal.Decimal
		symbol   string
		expected string
	}{
		{"whole amount", decimal.NewFromInt(1500), "ج.م", "١٥٠٠.٠٠ ج.م"},
		{"fractional amount", decimal.NewFromFloat(1250.5), "ج.م", "١٢٥٠.٥٠ ج.م"},
		{"zero", decimal.Zero, "ج.م", "٠.٠٠ ج.م"},
		{"negative", decimal.NewFromInt(-75), "ج.م", "-٧٥.٠٠ ج.م"},
		{"other symbol", decimal.NewFromInt(10), "$", "١٠.٠٠ $"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, utils.FormatCurrency(tc.amount, tc.symbol))
		})
	}
}

func TestParseCurrency(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected decimal.Decimal
	}{
		{"formatted arabic", "١٢٥٠.٥٠ ج.م", decimal.NewFromFloat(1250.50)},
		{"ascii digits", "99.99 EGP", decimal.NewFromFloat(99.99)},
		{"negative", "-٧٥.٠٠ ج.م", decimal.NewFromInt(-75)},
		{"garbage", "no amount here", decimal.Zero},
		{"empty", "", decimal.Zero},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.expected.Equal(utils.ParseCurrency(tc.input)),
				"got %s", utils.ParseCurrency(tc.input))
		})
	}
}

func TestCurrencyRoundTrip(t *testing.T) {
	amounts := []decimal.Decimal{
		decimal.NewFromInt(0),
		decimal.NewFromFloat(1250.50),
		decimal.NewFromInt(999999),
	}
	for _, amount := range amounts {
		parsed := utils.ParseCurrency(utils.FormatCurrency(amount, "ج.م"))
		assert.True(t, amount.Equal(parsed), "expected %s, got %s", amount, parsed)
	}
}
