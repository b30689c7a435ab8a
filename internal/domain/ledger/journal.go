// Package ledger builds double-entry journal rows and bookkeeping-tool
// vouchers from classified transactions.
package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/humblebees/bankjournal/internal/domain/categorization"
	"github.com/humblebees/bankjournal/internal/domain/narration"
	"github.com/humblebees/bankjournal/internal/domain/statement/parser"
)

// VoucherType names the bookkeeping-tool voucher a transaction maps to.
type VoucherType string

const (
	VoucherPayment     VoucherType = "Payment"
	VoucherReceipt     VoucherType = "Receipt"
	VoucherContra      VoucherType = "Contra"
	VoucherPurchase    VoucherType = "Purchase"
	VoucherSales       VoucherType = "Sales"
	VoucherBankCharges VoucherType = "Bank Charges"
	VoucherMiscExpense VoucherType = "Miscellaneous Expenses"
)

// Ledgers names the accounts used when pairing debits and credits. It is
// externally supplied configuration, not business logic; DefaultLedgers
// provides the stock names.
type Ledgers struct {
	Bank       string
	Sales      string
	Purchase   string
	Categories map[categorization.Category]string
}

// DefaultLedgers returns the stock ledger names.
func DefaultLedgers() Ledgers {
	return Ledgers{
		Bank:     "Bank A/c",
		Sales:    "Sales A/c",
		Purchase: "Purchase A/c",
		Categories: map[categorization.Category]string{
			categorization.CategoryBankCharges:    "Bank Charges A/c",
			categorization.CategoryGST:            "GST A/c",
			categorization.CategoryInterest:       "Interest A/c",
			categorization.CategoryLoan:           "Loan Charge A/c",
			categorization.CategoryPrinting:       "Printing Charges A/c",
			categorization.CategoryGeneralExpense: "General Expenses A/c",
		},
	}
}

// CategoryLedger resolves the expense ledger for a category, reporting
// whether a mapping exists.
func (l Ledgers) CategoryLedger(cat categorization.Category) (string, bool) {
	name, ok := l.Categories[cat]
	return name, ok
}

// JournalEntry is one double-entry accounting line.
type JournalEntry struct {
	Date        string
	Debit       string
	Credit      string
	Amount      decimal.Decimal
	Narration   string
	VoucherType VoucherType
}

// BuildJournalEntry pairs a classified transaction with its debit and
// credit ledgers. Sales debit the bank; everything else credits it, with
// the category's ledger (or the purchase ledger as fallback) on the debit
// side.
func BuildJournalEntry(txn parser.Transaction, cat categorization.Category, ledgers Ledgers) JournalEntry {
	entry := JournalEntry{
		Date:      txn.Date,
		Amount:    txn.Amount,
		Narration: narration.Shorten(txn.Description),
	}

	switch cat {
	case categorization.CategorySales:
		entry.Debit = ledgers.Bank
		entry.Credit = ledgers.Sales
	case categorization.CategoryPurchase:
		entry.Debit = ledgers.Purchase
		entry.Credit = ledgers.Bank
	default:
		if name, ok := ledgers.CategoryLedger(cat); ok {
			entry.Debit = name
		} else {
			entry.Debit = ledgers.Purchase
		}
		entry.Credit = ledgers.Bank
	}

	entry.VoucherType = journalVoucherType(txn, cat)
	return entry
}

// journalVoucherType is the coarse voucher classification attached to
// journal rows: a cash-deposit "cdr" marker overrides everything, sales
// rows are receipts, the rest are payments. The export stage runs the
// richer detector in voucher.go instead.
func journalVoucherType(txn parser.Transaction, cat categorization.Category) VoucherType {
	if strings.Contains(strings.ToLower(txn.Description), "cdr") {
		return VoucherContra
	}
	if cat == categorization.CategorySales {
		return VoucherReceipt
	}
	return VoucherPayment
}
