package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/humblebees/bankjournal/internal/domain/categorization"
	"github.com/humblebees/bankjournal/internal/domain/narration"
	"github.com/humblebees/bankjournal/internal/domain/statement/parser"
)

// Keyword hints for the export-stage voucher type detector.
var (
	transferKeywords = []string{"mtfr", "neft", "rtgs", "upi", "imps", "trf"}
	cashKeywords     = []string{"by cash", "cash deposit", "cash dep", "cash", "self"}
	purchaseHints    = []string{"purchase", "pos", "debit card", "dr card", "ecom", "shopping"}
	salesHints       = []string{"sale", "sales", "invoice", "inv ", "inv-"}

	// transferNarrationKeywords decide ledger naming inside a voucher, a
	// wider list than the type detector's.
	transferNarrationKeywords = []string{"mtfr", "neft", "rtgs", "upi", "imps", "trf", "mbill", "ebil"}
)

// DetectVoucherType maps a classified transaction to a voucher type using
// direction and keyword hints. This is the detector the export stage uses;
// journal rows carry the simpler classification from journal.go.
func DetectVoucherType(txn parser.Transaction, cat categorization.Category) VoucherType {
	desc := strings.ToLower(txn.Description)

	if cat == categorization.CategoryBankCharges {
		return VoucherBankCharges
	}
	if cat == categorization.CategoryGeneralExpense {
		return VoucherMiscExpense
	}

	if strings.Contains(desc, "deposit") || containsAny(desc, cashKeywords) {
		return VoucherContra
	}

	if txn.Direction == parser.DirectionDebit {
		if cat == categorization.CategoryPurchase && containsAny(desc, purchaseHints) {
			return VoucherPurchase
		}
		return VoucherPayment
	}

	if txn.Direction == parser.DirectionCredit {
		if containsAny(desc, salesHints) {
			return VoucherSales
		}
		return VoucherReceipt
	}

	if cat == categorization.CategoryPurchase {
		return VoucherPayment
	}
	if cat == categorization.CategorySales {
		return VoucherReceipt
	}

	if containsAny(desc, transferKeywords) {
		return VoucherContra
	}
	return VoucherPayment
}

// VoucherLine is one row of a voucher import sheet. Every line carries the
// full voucher fields; writers blank the date/type/number on continuation
// lines, which is an export-layout convention rather than a semantic one.
type VoucherLine struct {
	Date       string
	Type       VoucherType
	Number     int
	LedgerName string
	Amount     decimal.Decimal
	DrCr       string
	Narration  string
}

// BuildVoucherLines expands one classified transaction into exactly two
// balanced ledger lines. Receipt vouchers list the credit line first;
// everything else leads with the debit line.
func BuildVoucherLines(txn parser.Transaction, cat categorization.Category, number int, bankLedger string) []VoucherLine {
	voucherType := DetectVoucherType(txn, cat)
	narr := narration.Shorten(txn.Description)
	amount := txn.Amount.Round(2)
	party := PartyLedgerName(txn.Description)
	hasTransfer := hasTransferKeyword(txn.Description, narr)

	type side struct {
		ledger string
		drCr   string
	}
	var sides []side

	switch voucherType {
	case VoucherReceipt:
		creditLedger := party
		if hasTransfer {
			creditLedger = "SALE"
		}
		sides = []side{{creditLedger, "Cr"}, {bankLedger, "Dr"}}

	case VoucherPayment:
		debitLedger := party
		if hasTransfer {
			debitLedger = "Purchase"
		}
		sides = []side{{debitLedger, "Dr"}, {bankLedger, "Cr"}}

	case VoucherBankCharges:
		sides = []side{{"Bank Charges", "Dr"}, {bankLedger, "Cr"}}

	case VoucherPurchase:
		sides = []side{{"Purchase", "Dr"}, {party, "Cr"}}

	case VoucherSales:
		sides = []side{{party, "Dr"}, {"Sales", "Cr"}}

	case VoucherContra:
		if txn.Direction == parser.DirectionCredit {
			sides = []side{{bankLedger, "Dr"}, {"Cash", "Cr"}}
		} else {
			sides = []side{{"Cash", "Dr"}, {bankLedger, "Cr"}}
		}

	case VoucherMiscExpense:
		sides = []side{{"Miscellaneous Expenses", "Dr"}, {bankLedger, "Cr"}}

	default:
		sides = []side{{party, "Dr"}, {bankLedger, "Cr"}}
	}

	lines := make([]VoucherLine, 0, len(sides))
	for _, s := range sides {
		lines = append(lines, VoucherLine{
			Date:       txn.Date,
			Type:       voucherType,
			Number:     number,
			LedgerName: s.ledger,
			Amount:     amount,
			DrCr:       s.drCr,
			Narration:  narr,
		})
	}
	return lines
}

// PartyLedgerName is the counterparty placeholder used when no structured
// payee exists: the shortened narration, title-cased.
func PartyLedgerName(description string) string {
	return titleCase(narration.Shorten(description))
}

// hasTransferKeyword checks description and narration together. "by cash"
// is explicitly never a transfer here; those rows belong to Contra
// handling.
func hasTransferKeyword(description, narr string) bool {
	text := strings.ToLower(description + " " + narr)
	if strings.Contains(text, "by cash") {
		return false
	}
	return containsAny(text, transferNarrationKeywords)
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}
	return strings.Join(words, " ")
}
