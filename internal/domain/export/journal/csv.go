// Package journal writes the double-entry journal as a CSV review file.
package journal

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/humblebees/bankjournal/internal/domain/statement/service"
	"github.com/humblebees/bankjournal/pkg/money"
)

// Row is one journal line in the review CSV. Amount stays machine-parseable
// while Display carries the currency-formatted rendering for human review.
type Row struct {
	Date        string `csv:"Date"`
	Debit       string `csv:"Debit"`
	Credit      string `csv:"Credit"`
	Amount      string `csv:"Amount"`
	Display     string `csv:"Amount (INR)"`
	Narration   string `csv:"Narration"`
	VoucherType string `csv:"Voucher Type"`
	Category    string `csv:"Category"`
}

// Write renders the statement's journal entries to a CSV file at path.
func Write(stmt *service.Statement, path string) error {
	rows := make([]Row, 0, len(stmt.Entries))
	for i, entry := range stmt.Entries {
		rows = append(rows, Row{
			Date:        entry.Date,
			Debit:       entry.Debit,
			Credit:      entry.Credit,
			Amount:      money.FormatPlain(entry.Amount),
			Display:     money.Format(entry.Amount),
			Narration:   entry.Narration,
			VoucherType: string(entry.VoucherType),
			Category:    string(stmt.Classified[i].Category),
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create journal csv %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("write journal csv %s: %w", path, err)
	}
	return nil
}
