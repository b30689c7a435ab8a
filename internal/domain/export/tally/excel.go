// Package tally writes voucher import workbooks in the layout the Tally
// import tool expects.
package tally

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/humblebees/bankjournal/internal/domain/ledger"
	"github.com/humblebees/bankjournal/internal/domain/statement/service"
)

// sheetName is the single sheet the import tool reads.
const sheetName = "Sheet1"

var headers = []interface{}{
	"Voucher Date",
	"Voucher Type Name",
	"Voucher Number",
	"Ledger Name",
	"Ledger Amount",
	"Ledger Amount Dr/Cr",
	"Narration",
}

// Write renders the statement's classified transactions as a voucher
// workbook at path. Voucher numbers are sequential from 1; continuation
// lines of a voucher leave the date, type and number cells blank, which is
// how the import tool groups lines into vouchers.
func Write(stmt *service.Statement, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	bankLedger := stmt.BankLedger
	if bankLedger == "" {
		bankLedger = "Bank A/c"
		if name, ok := service.BankLedger(stmt.Context.Bank); ok {
			bankLedger = name
		}
	}

	row := 2
	for i, txn := range stmt.Classified {
		lines := ledger.BuildVoucherLines(txn.Transaction, txn.Category, i+1, bankLedger)
		for j, ln := range lines {
			cells := voucherRow(ln, j == 0)
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return fmt.Errorf("row %d: %w", row, err)
			}
			if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
				return fmt.Errorf("write voucher row %d: %w", row, err)
			}
			row++
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// voucherRow flattens a voucher line into sheet cells. Only the first line
// of a voucher carries the date, type and number.
func voucherRow(ln ledger.VoucherLine, first bool) []interface{} {
	date, vtype, number := "", "", ""
	if first {
		date = ln.Date
		vtype = string(ln.Type)
		number = fmt.Sprintf("%d", ln.Number)
	}
	return []interface{}{
		date,
		vtype,
		number,
		ln.LedgerName,
		ln.Amount.Round(2).InexactFloat64(),
		ln.DrCr,
		ln.Narration,
	}
}
