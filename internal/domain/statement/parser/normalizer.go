package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/humblebees/bankjournal/pkg/money"
)

// Direction is the money-flow direction inferred from the running balance
// delta. The zero value means no prior balance existed to diff against, or
// the delta fell inside the tolerance band.
type Direction string

const (
	DirectionCredit  Direction = "credit"
	DirectionDebit   Direction = "debit"
	DirectionUnknown Direction = ""
)

// amountBalanceRe captures "<amount> <balance> [Dr|Cr]" pairs inside a block.
var amountBalanceRe = regexp.MustCompile(`(?i)([\d,]+\.\d{2})\s+([\d,]+\.\d{2})\s*(Dr|Cr)?`)

// openingBalanceRe captures a lone balance with an optional Dr/Cr tag.
var openingBalanceRe = regexp.MustCompile(`(?i)([\d,]+\.\d{2})\s*(Dr|Cr)?`)

// deltaTolerance absorbs rounding noise when diffing running balances.
var deltaTolerance = decimal.RequireFromString("0.01")

// Transaction is one normalized statement row. Amount is always
// non-negative; Balance carries the sign implied by its Dr/Cr tag (a debit
// balance is negative). Transactions are immutable after creation.
type Transaction struct {
	Date        string
	Description string
	Amount      decimal.Decimal
	Balance     decimal.Decimal
	Direction   Direction
}

// Normalizer threads the running balance across the blocks of one
// statement. Statements never share state: use a fresh Normalizer per
// statement, and per goroutine if a caller parallelizes across statements.
type Normalizer struct {
	previousBalance *decimal.Decimal
}

// NewNormalizer returns a Normalizer with no prior balance.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// SetOpeningBalance seeds the running balance, for callers that already
// know the statement's starting position.
func (n *Normalizer) SetOpeningBalance(b decimal.Decimal) {
	n.previousBalance = &b
}

// Normalize converts raw blocks into transactions in input order.
// Opening-balance blocks only move the running balance and are never
// emitted; blocks with no amount/balance match are dropped silently so a
// statement with some malformed rows still yields the parseable ones.
func (n *Normalizer) Normalize(blocks []RawBlock) []Transaction {
	txns := make([]Transaction, 0, len(blocks))
	for _, block := range blocks {
		if block.IsOpening() {
			n.consumeOpening(block.Text)
			continue
		}
		if txn, ok := n.normalizeBlock(block); ok {
			txns = append(txns, txn)
		}
	}
	return txns
}

// consumeOpening reads the starting balance out of an opening block. The
// block is dropped whether or not a balance is found.
func (n *Normalizer) consumeOpening(text string) {
	m := openingBalanceRe.FindStringSubmatch(text)
	if m == nil {
		return
	}
	bal, err := money.ParseAmount(m[1])
	if err != nil {
		return
	}
	if strings.EqualFold(m[2], "dr") {
		bal = bal.Neg()
	}
	n.previousBalance = &bal
}

func (n *Normalizer) normalizeBlock(block RawBlock) (Transaction, bool) {
	matches := amountBalanceRe.FindAllStringSubmatch(block.Text, -1)
	if len(matches) == 0 {
		return Transaction{}, false
	}

	// Rightmost match wins: narration text sometimes embeds amount-like
	// numbers before the true trailing amount/balance pair.
	last := matches[len(matches)-1]

	amount, err := money.ParseAmount(last[1])
	if err != nil {
		return Transaction{}, false
	}
	balance, err := money.ParseAmount(last[2])
	if err != nil {
		return Transaction{}, false
	}
	if strings.EqualFold(last[3], "dr") {
		balance = balance.Neg()
	}

	direction := DirectionUnknown
	if n.previousBalance != nil {
		delta := balance.Sub(*n.previousBalance)
		switch {
		case delta.GreaterThan(deltaTolerance):
			direction = DirectionCredit
		case delta.LessThan(deltaTolerance.Neg()):
			direction = DirectionDebit
		}
	}

	desc := block.Text
	desc = strings.ReplaceAll(desc, last[1], "")
	desc = strings.ReplaceAll(desc, last[2], "")
	if last[3] != "" {
		desc = strings.ReplaceAll(desc, last[3], "")
	}
	desc = strings.TrimSpace(strings.ReplaceAll(desc, `"`, ""))

	n.previousBalance = &balance

	return Transaction{
		Date:        block.Date,
		Description: desc,
		Amount:      amount,
		Balance:     balance,
		Direction:   direction,
	}, true
}
