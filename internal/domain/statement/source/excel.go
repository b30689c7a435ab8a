package source

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// headerRows is how many leading sheet rows the header view covers. Sheets
// carry no page breaks, so a fixed window stands in for the opening pages.
const headerRows = 40

// ExcelSource reads statements exported as workbooks. Each sheet row
// becomes one text line, cells joined with spaces, so the downstream
// pipeline sees the same shape as extracted page text.
type ExcelSource struct{}

// NewExcelSource returns a Source over XLSX statement exports.
func NewExcelSource() *ExcelSource {
	return &ExcelSource{}
}

// Lines returns every row of the first sheet as a text line.
func (s *ExcelSource) Lines(ctx context.Context, path string) ([]string, error) {
	return s.read(ctx, path, -1)
}

// HeaderLines returns the first rows of the sheet.
func (s *ExcelSource) HeaderLines(ctx context.Context, path string) ([]string, error) {
	return s.read(ctx, path, headerRows)
}

func (s *ExcelSource) read(ctx context.Context, path string, limit int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open statement workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("statement workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if limit >= 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, strings.TrimSpace(strings.Join(row, " ")))
	}
	return lines, nil
}

// AutoSource dispatches to the text or workbook reader by file extension.
type AutoSource struct {
	text  *FileSource
	excel *ExcelSource
}

// NewAutoSource returns a Source that handles .txt and .xlsx statements.
func NewAutoSource() *AutoSource {
	return &AutoSource{text: NewFileSource(), excel: NewExcelSource()}
}

func (s *AutoSource) pick(path string) Source {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return s.excel
	}
	return s.text
}

func (s *AutoSource) Lines(ctx context.Context, path string) ([]string, error) {
	return s.pick(path).Lines(ctx, path)
}

func (s *AutoSource) HeaderLines(ctx context.Context, path string) ([]string, error) {
	return s.pick(path).HeaderLines(ctx, path)
}
