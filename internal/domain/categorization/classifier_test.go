package categorization

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/humblebees/bankjournal/internal/domain/statement/parser"
)

func txn(desc string, direction parser.Direction) parser.Transaction {
	return parser.Transaction{
		Date:        "01/04/2024",
		Description: desc,
		Amount:      decimal.NewFromInt(100),
		Direction:   direction,
	}
}

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier(DefaultRules())

	t.Run("charges beat transfers", func(t *testing.T) {
		got := c.Classify(txn("NEFT CHARGES", parser.DirectionDebit))
		assert.Equal(t, CategoryBankCharges, got)
	})

	t.Run("recharge is never a bank charge", func(t *testing.T) {
		got := c.Classify(txn("JIO RECHARGE", parser.DirectionDebit))
		assert.Equal(t, CategoryGeneralExpense, got)
	})

	t.Run("utility keywords map to general expense", func(t *testing.T) {
		for _, desc := range []string{"JKPDD BILLPAY", "AIRTEL PREPAID", "KPDCL ELECTRICITY BILL"} {
			t.Run(desc, func(t *testing.T) {
				assert.Equal(t, CategoryGeneralExpense, c.Classify(txn(desc, parser.DirectionDebit)))
			})
		}
	})

	t.Run("specific ledgers before charge keywords", func(t *testing.T) {
		assert.Equal(t, CategoryGST, c.Classify(txn("GST PAYMENT FEE", parser.DirectionDebit)))
		assert.Equal(t, CategoryLoan, c.Classify(txn("LOAN EMI RECOVERY", parser.DirectionDebit)))
		assert.Equal(t, CategoryPrinting, c.Classify(txn("STATEMENT PRINTING CHARGE", parser.DirectionDebit)))
	})

	t.Run("interest needs a standalone word", func(t *testing.T) {
		assert.Equal(t, CategoryInterest, c.Classify(txn("SB INTEREST CREDIT", parser.DirectionUnknown)))
		assert.NotEqual(t, CategoryInterest, c.Classify(txn("DISINTERESTED PARTY", parser.DirectionDebit)))
	})

	t.Run("ocr damaged interest forms", func(t *testing.T) {
		assert.Equal(t, CategoryInterest, c.Classify(txn("INT.COLL 31/03", parser.DirectionUnknown)))
		assert.Equal(t, CategoryInterest, c.Classify(txn("I NT.COLL 31/03", parser.DirectionUnknown)))
	})

	t.Run("transfer rows never classify as interest", func(t *testing.T) {
		got := c.Classify(txn("NEFT TRF INTEREST RATE 10%", parser.DirectionCredit))
		assert.Equal(t, CategorySales, got)
	})

	t.Run("direction decides the default buckets", func(t *testing.T) {
		assert.Equal(t, CategorySales, c.Classify(txn("CLEARING CREDIT", parser.DirectionCredit)))
		assert.Equal(t, CategoryPurchase, c.Classify(txn("CHEQUE PAID", parser.DirectionDebit)))
	})

	t.Run("unknown direction falls back on keywords", func(t *testing.T) {
		assert.Equal(t, CategorySales, c.Classify(txn("UPI RECEIVED", parser.DirectionUnknown)))
		assert.Equal(t, CategorySales, c.Classify(txn("CASH DEPOSIT MACHINE", parser.DirectionUnknown)))
		assert.Equal(t, CategoryPurchase, c.Classify(txn("MISC ENTRY", parser.DirectionUnknown)))
	})

	t.Run("classification is deterministic", func(t *testing.T) {
		sample := txn("NEFT CHARGES GST RECOVERY", parser.DirectionDebit)
		first := c.Classify(sample)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, c.Classify(sample))
		}
	})
}

func TestClassifier_LegacyRules(t *testing.T) {
	c := NewClassifier(LegacyRules())

	t.Run("no general expense bucket", func(t *testing.T) {
		got := c.Classify(txn("JIO RECHARGE", parser.DirectionDebit))
		assert.Equal(t, CategoryPurchase, got)
	})

	t.Run("recovery is not a charge keyword", func(t *testing.T) {
		got := c.Classify(txn("EMI RECOVERY", parser.DirectionDebit))
		assert.Equal(t, CategoryPurchase, got)
	})
}

func TestRulesByName(t *testing.T) {
	def, err := RulesByName("")
	assert.NoError(t, err)
	assert.Equal(t, "default", def.Version)

	legacy, err := RulesByName("legacy")
	assert.NoError(t, err)
	assert.Equal(t, "legacy", legacy.Version)

	_, err = RulesByName("nope")
	assert.Error(t, err)
}

func BenchmarkClassifier_Classify(b *testing.B) {
	c := NewClassifier(DefaultRules())
	samples := make([]parser.Transaction, 0, 100)
	for i := 0; i < 100; i++ {
		samples = append(samples, txn(fmt.Sprintf("UPI/4099%02d/MERCHANT %d NEFT", i, i), parser.DirectionDebit))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Classify(samples[i%len(samples)])
	}
}
