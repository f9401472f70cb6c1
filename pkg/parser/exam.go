package parser

import (
	"fmt"
	"strings"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/cell"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/timetable"
)

// Exam rows carry only their date; the time column is mapped but not read.
var examHeaderRules = []fieldRule{
	{fieldLecturer, []string{"invigilator", "supervisor"}},
	{fieldVenue, []string{"venue", "room", "hall"}},
	{fieldDate, []string{"date"}},
	{fieldTime, []string{"time", "start"}},
	{fieldName, []string{"name", "title"}},
	{fieldCode, []string{"unit", "code", "course"}},
}

// ExamParser handles exam schedules keyed by date rather than weekday.
type ExamParser struct{}

var _ FormatParser = ExamParser{}

func (ExamParser) Name() string { return "exam" }

func (ExamParser) Description() string {
	return "Exam timetable with one paper per row and a date column"
}

// Detect needs "exam" somewhere in the first rows, plus a "date" heading or
// a numeric date.
func (ExamParser) Detect(grid timetable.Grid) bool {
	var exam, date bool
	for _, row := range grid.Head(headerRows) {
		for _, v := range row {
			text := cell.Lower(v)
			exam = exam || strings.Contains(text, "exam")
			date = date || strings.Contains(text, "date") || cell.LooksLikeDate(text)
		}
	}
	return exam && date
}

func (p ExamParser) Parse(grid timetable.Grid, params timetable.Params) (*timetable.Result, error) {
	headerRow, cols := -1, columns(nil)
	for r, row := range grid.Head(headerRows) {
		if m := mapHeader(row, examHeaderRules); m.has(fieldCode) && m.has(fieldDate) {
			headerRow, cols = r, m
			break
		}
	}
	if headerRow < 0 {
		return nil, fmt.Errorf("%s: %w: no row with both unit and date columns", p.Name(), ErrNoHeader)
	}

	result := timetable.NewResult(p.Name())
	lastDate := ""
	for r := headerRow + 1; r < len(grid); r++ {
		// A blank date cell belongs to the date above it (vertically merged days).
		if text := cell.Clean(cols.get(grid, r, fieldDate)); text != "" {
			lastDate, _ = cell.ParseDate(text)
		}

		raw := cell.Clean(cols.get(grid, r, fieldCode))
		if len(raw) < 2 {
			continue
		}
		code, ok := cell.ExtractUnitCode(raw)
		if !ok {
			code = strings.ToUpper(raw)
		}

		e := newEntry(params, code, cell.Clean(cols.get(grid, r, fieldName)))
		e.SessionType = timetable.Exam
		e.ExamDate = lastDate
		e.Venue = cell.Clean(cols.get(grid, r, fieldVenue))
		e.Lecturer = cell.Clean(cols.get(grid, r, fieldLecturer))

		result.Entries = append(result.Entries, e)
		result.AddUnit(timetable.Unit{Code: code, Name: e.UnitName, Department: cell.Department(code)})
	}

	return result, nil
}
