// Package categorization assigns a ledger category to each normalized
// transaction using an ordered keyword-rule cascade.
package categorization

import "fmt"

// Category is the classification tag that drives ledger selection.
type Category string

const (
	CategoryGST            Category = "gst"
	CategoryLoan           Category = "loan"
	CategoryPrinting       Category = "printing"
	CategoryBankCharges    Category = "bank_charges"
	CategoryInterest       Category = "interest"
	CategoryGeneralExpense Category = "general_expense"
	CategorySales          Category = "sales"
	CategoryPurchase       Category = "purchase"
)

// RuleSet is the versioned keyword configuration for one classifier
// cascade. Rule sets are immutable once built; behaviour differences
// between pipeline generations are expressed as different rule sets, not
// code branches. All keywords are lower case and matched as substrings of
// the lower-cased description.
type RuleSet struct {
	Version string

	// ExpenseKeywords flag utility/recharge rows as general_expense before
	// anything else, separating them from plain purchase payments. Empty in
	// rule sets without that bucket.
	ExpenseKeywords []string

	// ChargeKeywords flag bank fees. Checked before transfer keywords so
	// "NEFT CHARGES" lands in bank_charges, not a transfer bucket.
	ChargeKeywords []string

	// TransferKeywords define what a transfer row looks like. They guard
	// the interest rule: footer text like "Interest Rate 10%" must not
	// mislabel a transfer row.
	TransferKeywords []string
}

// DefaultRules is the canonical rule set: it carries the general_expense
// bucket, counts "recovery" as a bank-charge keyword and includes the
// "by cash"/"mbill"/"ebil" transfer markers.
func DefaultRules() RuleSet {
	return RuleSet{
		Version: "default",
		ExpenseKeywords: []string{
			"pdd", "jkpdd", "kpdcl", "electricity", // power boards
			"jio", "airtel", "bsnl", "vi ", "vodafone", // telecom
			"recharge", "prepaid", "postpaid", "billpay", // generic bill words
		},
		ChargeKeywords: []string{
			"sms", "cibil", "fee", "inspc", "commissio", "charge", "chrg", "recovery",
		},
		TransferKeywords: []string{
			"mtfr", "neft", "rtgs", "upi", "imps", "trf", "by cash", "mbill", "ebil",
		},
	}
}

// LegacyRules mirrors the earlier cascade generation: no general_expense
// bucket, no "recovery" charge keyword and the shorter transfer list.
func LegacyRules() RuleSet {
	return RuleSet{
		Version: "legacy",
		ChargeKeywords: []string{
			"sms", "cibil", "fee", "inspc", "commissio", "charge", "chrg",
		},
		TransferKeywords: []string{
			"mtfr", "neft", "rtgs", "upi", "imps", "trf",
		},
	}
}

// RulesByName resolves a configured rule-set name.
func RulesByName(name string) (RuleSet, error) {
	switch name {
	case "", "default":
		return DefaultRules(), nil
	case "legacy":
		return LegacyRules(), nil
	default:
		return RuleSet{}, fmt.Errorf("unknown rule set %q", name)
	}
}
