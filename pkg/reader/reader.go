// Package reader decodes timetable files into a timetable.Grid.
package reader

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/timetable"
)

// ErrUnsupportedFormat is returned for file types no decoder handles.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Format is a decodable file type.
type Format string

const (
	XLSX Format = "xlsx"
	CSV  Format = "csv"
	HTML Format = "html"
)

// Options control decoding.
type Options struct {
	// FillMerged copies a merged range's top-left value into every cell
	// of the range. Applies to xlsx merges and html row/col spans.
	FillMerged bool
}

// FormatOf maps a file name to its decoder by extension.
func FormatOf(name string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".xlsx", ".xlsm", ".xltx":
		return XLSX, nil
	case ".csv":
		return CSV, nil
	case ".html", ".htm":
		return HTML, nil
	case ".xls":
		return "", fmt.Errorf("%w: legacy .xls, re-save the file as .xlsx", ErrUnsupportedFormat)
	case "":
		return "", fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, name)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// Read decodes the file at path.
func Read(path string, opts Options) (timetable.Grid, error) {
	if _, err := FormatOf(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ReadBytes(filepath.Base(path), data, opts)
}

// ReadBytes decodes data, using name only to pick the decoder.
func ReadBytes(name string, data []byte, opts Options) (timetable.Grid, error) {
	format, err := FormatOf(name)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	switch format {
	case XLSX:
		rows, err = readXLSX(bytes.NewReader(data), opts)
	case CSV:
		rows, err = readCSV(data)
	case HTML:
		rows, err = readHTML(bytes.NewReader(data), opts)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s as %s: %w", name, format, err)
	}
	return toGrid(rows), nil
}

// toGrid pads rows to the widest row, drops trailing blank rows and turns
// empty cells into nil.
func toGrid(rows [][]string) timetable.Grid {
	end := len(rows)
	for end > 0 && blankRow(rows[end-1]) {
		end--
	}
	rows = rows[:end]

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	grid := make(timetable.Grid, len(rows))
	for r, row := range rows {
		grid[r] = make([]any, width)
		for c, v := range row {
			if strings.TrimSpace(v) != "" {
				grid[r][c] = v
			}
		}
	}
	return grid
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
