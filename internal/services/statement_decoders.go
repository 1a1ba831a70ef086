package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

var errEmptyTable = errors.New("file has no header row")

// tableDecoder reads a statement file into rows of cells, header first.
type tableDecoder func(data []byte) ([][]string, error)

func defaultDecoders() map[string]tableDecoder {
	return map[string]tableDecoder{
		".csv":  decodeCSV,
		".xlsx": decodeXLSX,
		".xls":  decodeXLS,
	}
}

func decodeCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		rows = append(rows, record)
	}
	if len(rows) == 0 {
		return nil, errEmptyTable
	}
	return rows, nil
}

// decodeXLSX reads the first worksheet. Cells come back raw so date cells
// arrive as serial numbers rather than display strings.
func decodeXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errEmptyTable
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read xlsx sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, errEmptyTable
	}
	return rows, nil
}

// decodeXLS reads the first worksheet of a legacy BIFF workbook. The parser
// panics on some malformed inputs; those surface as decode errors.
func decodeXLS(data []byte) (rows [][]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			rows = nil
			err = fmt.Errorf("failed to read xls: %v", r)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open xls: %w", err)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errEmptyTable
	}

	// ReadAllCells skips single-row sheets, so a header-only sheet is read directly.
	if sheet.MaxRow == 0 {
		header := xlsRow(sheet, 0)
		if header == nil {
			return nil, errEmptyTable
		}
		cells := make([]string, header.LastCol())
		for j := range cells {
			cells[j] = header.Col(j)
		}
		return [][]string{cells}, nil
	}

	// Sheets fill the limit in order, so capping at the first sheet's height
	// keeps later sheets out. Indexes without a row come back nil.
	rows = wb.ReadAllCells(int(sheet.MaxRow) + 1)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errEmptyTable
	}
	return rows, nil
}

// xlsRow returns nil for an index the sheet holds no row for; WorkSheet.Row
// dereferences the missing entry.
func xlsRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}
