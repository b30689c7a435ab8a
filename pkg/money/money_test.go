package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1,234.50", "1234.50"},
		{"10,00,000.00", "1000000.00"},
		{"₹1,234.50", "1234.50"},
		{"Rs. 500", "500"},
		{"INR 42.75", "42.75"},
		{"  99.00  ", "99.00"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseAmount(tc.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "got %s", got)
		})
	}

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ParseAmount("not money")
		assert.Error(t, err)
		_, err = ParseAmount("")
		assert.Error(t, err)
	})
}

func TestFormat(t *testing.T) {
	got := Format(decimal.RequireFromString("1234.50"))
	assert.Contains(t, got, "1,234.50")
}

func TestFormatPlain(t *testing.T) {
	assert.Equal(t, "1234.50", FormatPlain(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "0.00", FormatPlain(decimal.Zero))
}
