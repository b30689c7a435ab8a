package tally

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/humblebees/bankjournal/internal/domain/categorization"
	"github.com/humblebees/bankjournal/internal/domain/statement/parser"
	"github.com/humblebees/bankjournal/internal/domain/statement/service"
	"github.com/humblebees/bankjournal/internal/domain/statement/sniffer"
)

func sampleStatement() *service.Statement {
	return &service.Statement{
		Path: "april.txt",
		Context: service.StatementContext{
			Bank:          sniffer.BankHDFC,
			AccountHolder: "TAWAKKAL TRADERS",
		},
		Classified: []service.ClassifiedTransaction{
			{
				Transaction: parser.Transaction{
					Date:        "01/04/2024",
					Description: "NEFT CR AXIS TRADERS",
					Amount:      decimal.RequireFromString("1000.00"),
					Direction:   parser.DirectionCredit,
				},
				Category: categorization.CategorySales,
			},
			{
				Transaction: parser.Transaction{
					Date:        "02/04/2024",
					Description: "SMS CHARGES",
					Amount:      decimal.RequireFromString("25.50"),
					Direction:   parser.DirectionDebit,
				},
				Category: categorization.CategoryBankCharges,
			},
		},
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "april Tally.xlsx")
	require.NoError(t, Write(sampleStatement(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	// Header plus two lines per voucher.
	require.Len(t, rows, 5)

	t.Run("header row", func(t *testing.T) {
		assert.Equal(t, []string{
			"Voucher Date", "Voucher Type Name", "Voucher Number", "Ledger Name",
			"Ledger Amount", "Ledger Amount Dr/Cr", "Narration",
		}, rows[0])
	})

	t.Run("first voucher line carries the voucher fields", func(t *testing.T) {
		assert.Equal(t, "01/04/2024", rows[1][0])
		assert.Equal(t, "Receipt", rows[1][1])
		assert.Equal(t, "1", rows[1][2])
		assert.Equal(t, "Cr", rows[1][5])
	})

	t.Run("continuation line leaves voucher fields blank", func(t *testing.T) {
		assert.Empty(t, rows[2][0])
		assert.Empty(t, rows[2][1])
		assert.Empty(t, rows[2][2])
		assert.Equal(t, "HDFC Bank", rows[2][3])
		assert.Equal(t, "Dr", rows[2][5])
	})

	t.Run("voucher numbers are sequential", func(t *testing.T) {
		assert.Equal(t, "1", rows[1][2])
		assert.Equal(t, "2", rows[3][2])
	})

	t.Run("bank charge voucher", func(t *testing.T) {
		assert.Equal(t, "Bank Charges", rows[3][1])
		assert.Equal(t, "Bank Charges", rows[3][3])
		assert.Equal(t, "25.5", rows[3][4])
	})
}
