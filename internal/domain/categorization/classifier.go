package categorization

import (
	"regexp"
	"strings"

	"github.com/cloudflare/ahocorasick"

	"github.com/humblebees/bankjournal/internal/domain/statement/parser"
)

// interestRe requires "interest" as a standalone word so tokens like
// "disinterest" or reference codes never match.
var interestRe = regexp.MustCompile(`\binterest\b`)

// Classifier runs the keyword cascade over one transaction at a time.
// It pre-compiles an Aho-Corasick matcher per keyword group so every group
// is checked in a single pass regardless of how many keywords it holds.
type Classifier struct {
	rules     RuleSet
	expenses  *ahocorasick.Matcher
	charges   *ahocorasick.Matcher
	transfers *ahocorasick.Matcher
}

// NewClassifier builds a classifier from an immutable rule set.
func NewClassifier(rules RuleSet) *Classifier {
	return &Classifier{
		rules:     rules,
		expenses:  buildMatcher(rules.ExpenseKeywords),
		charges:   buildMatcher(rules.ChargeKeywords),
		transfers: buildMatcher(rules.TransferKeywords),
	}
}

// Rules returns the rule set the classifier was built from.
func (c *Classifier) Rules() RuleSet {
	return c.rules
}

// Classify assigns a category to one transaction. It is a pure function of
// the transaction's description and direction: the same pair always yields
// the same category.
func (c *Classifier) Classify(txn parser.Transaction) Category {
	desc := strings.ToLower(txn.Description)

	// Utility bills and recharges first, so they never fall into the
	// purchase or bank_charges buckets below.
	if matchAny(c.expenses, desc) {
		return CategoryGeneralExpense
	}

	// Specific ledger charges.
	if strings.Contains(desc, "gst") {
		return CategoryGST
	}
	if strings.Contains(desc, "loan") {
		return CategoryLoan
	}
	if strings.Contains(desc, "printing") || strings.Contains(desc, "statement pr") {
		return CategoryPrinting
	}

	// Bank charges before transfers: "NEFT CHARGES" carries both words and
	// must land here. "recharge" is excluded so telecom top-ups that slipped
	// past the expense group never become bank charges.
	if matchAny(c.charges, desc) && !strings.Contains(desc, "recharge") {
		return CategoryBankCharges
	}

	// Transfer rows must never classify as interest: footer fragments like
	// "Interest Rate 10%" would otherwise mislabel them. The OCR-damaged
	// forms "int.coll" / "i nt.coll" count as interest too.
	isTransfer := matchAny(c.transfers, desc)
	if !isTransfer {
		if interestRe.MatchString(desc) || strings.Contains(desc, "int.coll") || strings.Contains(desc, "i nt.coll") {
			return CategoryInterest
		}
	}

	// Direction-based default buckets.
	switch txn.Direction {
	case parser.DirectionCredit:
		return CategorySales
	case parser.DirectionDebit:
		return CategoryPurchase
	}

	// No direction (first row after an unparsed opening balance, or an
	// unchanged running balance).
	if isTransfer || strings.Contains(desc, "deposit") {
		return CategorySales
	}
	return CategoryPurchase
}

func buildMatcher(keywords []string) *ahocorasick.Matcher {
	if len(keywords) == 0 {
		return nil
	}
	return ahocorasick.NewStringMatcher(keywords)
}

func matchAny(m *ahocorasick.Matcher, text string) bool {
	if m == nil {
		return false
	}
	return len(m.Match([]byte(text))) > 0
}
