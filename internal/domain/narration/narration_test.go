package narration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShorten(t *testing.T) {
	t.Run("keeps transaction type tokens", func(t *testing.T) {
		got := Shorten("NEFT TRANSFER TAWAKKAL TRADERS")
		assert.Contains(t, got, "NEFT")
		assert.Contains(t, got, "TAWAKKAL")
	})

	t.Run("drops noise words", func(t *testing.T) {
		got := Shorten("TO TRANSFER BY REF NO 12345678901 TAWAKKAL")
		assert.NotContains(t, got, "TO")
		assert.NotContains(t, got, "REF")
		assert.NotContains(t, got, "12345678901")
		assert.Contains(t, got, "TAWAKKAL")
	})

	t.Run("strips leading date", func(t *testing.T) {
		got := Shorten("01/04/2024 UPI GROCERY MART")
		assert.Equal(t, "UPI GROCERY MART", got)
	})

	t.Run("separators become spaces", func(t *testing.T) {
		got := Shorten("UPI/409912345678/GROCERY-MART")
		assert.Contains(t, got, "UPI")
		assert.Contains(t, got, "GROCERY")
		assert.Contains(t, got, "MART")
		assert.NotContains(t, got, "/")
	})

	t.Run("short numbers stay and long ones go", func(t *testing.T) {
		got := Shorten("POS SEC 14 MARKET 409912345678")
		assert.Contains(t, got, "14")
		assert.NotContains(t, got, "409912345678")
	})

	t.Run("single letters survive only as initials", func(t *testing.T) {
		got := Shorten("M S TRADERS X COMPANY")
		assert.Contains(t, got, "M S TRADERS")
		assert.NotContains(t, got, "X")
	})

	t.Run("never exceeds the budget", func(t *testing.T) {
		long := "NEFT TRANSFER FROM A VERY LONG COUNTERPARTY TRADING COMPANY NAME WITH BRANCHES"
		got := Shorten(long)
		assert.LessOrEqual(t, len(got), MaxLen)
	})

	t.Run("truncates at a word boundary", func(t *testing.T) {
		long := "NEFT TAWAKKAL TRADING COMPANY SRINAGAR KASHMIR BRANCH"
		got := Shorten(long)
		assert.LessOrEqual(t, len(got), MaxLen)
		assert.NotRegexp(t, ` $`, got)
		words := []string{"NEFT", "TAWAKKAL", "TRADING", "COMPANY", "SRINAGAR"}
		for _, w := range words[:3] {
			assert.Contains(t, got, w)
		}
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		assert.Equal(t, "", Shorten(""))
		assert.Equal(t, "", Shorten("   "))
	})

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{
			"NEFT TRANSFER TAWAKKAL TRADERS",
			"UPI/409912345678/GROCERY-MART",
			"01/04/2024 POS SEC 14 MARKET",
		}
		for _, in := range inputs {
			once := Shorten(in)
			assert.Equal(t, once, Shorten(once))
		}
	})
}
