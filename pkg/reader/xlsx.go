package reader

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// readXLSX returns the formatted cell text of the first sheet.
func readXLSX(r io.Reader, opts Options) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if !opts.FillMerged {
		return rows, nil
	}

	merges, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, err
	}
	for _, merge := range merges {
		fillRange(&rows, merge)
	}
	return rows, nil
}

// fillRange writes a merged range's value into every cell it covers,
// growing rows as needed.
func fillRange(rows *[][]string, merge excelize.MergeCell) {
	startCol, startRow, err := excelize.CellNameToCoordinates(merge.GetStartAxis())
	if err != nil {
		return
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(merge.GetEndAxis())
	if err != nil {
		return
	}

	val := merge.GetCellValue()
	for r := startRow - 1; r < endRow; r++ {
		for len(*rows) <= r {
			*rows = append(*rows, nil)
		}
		row := (*rows)[r]
		for len(row) < endCol {
			row = append(row, "")
		}
		for c := startCol - 1; c < endCol; c++ {
			row[c] = val
		}
		(*rows)[r] = row
	}
}
