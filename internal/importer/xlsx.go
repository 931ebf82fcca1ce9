package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook column order, after the header row: Book Name | Barcode | Author.
const (
	colTitle = iota
	colBarcode
	colAuthor
)

// ParseWorkbook reads every sheet of an xlsx workbook into import records.
// The first row of each sheet is assumed to be a header and skipped. Rows
// with no title and no barcode are dropped here; rows missing one of the two
// pass through so the import reports them as skipped.
func ParseWorkbook(r io.Reader) ([]Record, []string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	var records []Record
	for _, sheet := range sheets {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, nil, fmt.Errorf("read sheet %s: %w", sheet, err)
		}
		for i, row := range rows {
			if i == 0 {
				continue
			}
			rec := Record{
				Title:      cell(row, colTitle),
				BookNumber: cell(row, colBarcode),
				Author:     cell(row, colAuthor),
			}
			if rec.Title == "" && rec.BookNumber == "" {
				continue
			}
			records = append(records, rec)
		}
	}
	return records, sheets, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
