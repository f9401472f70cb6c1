package parser

import (
	"fmt"
	"strings"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/cell"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/timetable"
)

var listDetectGroups = [][]string{
	{"unit", "code", "course"},
	{"day", "week"},
	{"time", "start", "end"},
	{"venue", "room", "location"},
	{"lecturer", "instructor", "teacher"},
}

var listHeaderRules = []fieldRule{
	{fieldLecturer, []string{"lecturer", "instructor", "teacher"}},
	{fieldVenue, []string{"venue", "room", "location"}},
	{fieldType, []string{"type"}},
	{fieldName, []string{"name", "title"}},
	{fieldDate, []string{"date"}},
	{fieldCode, []string{"unit", "code", "course"}},
	{fieldDay, []string{"day", "week"}},
	{fieldStart, []string{"start"}},
	{fieldEnd, []string{"end"}},
	{fieldTime, []string{"time"}},
}

// ListParser handles sheets with one class per row under a header row.
type ListParser struct{}

var _ FormatParser = ListParser{}

func (ListParser) Name() string { return "list" }

func (ListParser) Description() string {
	return "One class per row with unit, day, time, venue and lecturer columns"
}

// Detect needs a single row that hits at least three of the five keyword groups.
func (ListParser) Detect(grid timetable.Grid) bool {
	for _, row := range grid.Head(detectRows) {
		if keywordGroupHits(row, listDetectGroups) >= 3 {
			return true
		}
	}
	return false
}

func (p ListParser) Parse(grid timetable.Grid, params timetable.Params) (*timetable.Result, error) {
	headerRow, cols := -1, columns(nil)
	for r, row := range grid.Head(headerRows) {
		if m := mapHeader(row, listHeaderRules); isListHeader(m) {
			headerRow, cols = r, m
			break
		}
	}
	if headerRow < 0 {
		return nil, fmt.Errorf("%s: %w: no row with a unit column and two more recognizable columns", p.Name(), ErrNoHeader)
	}

	result := timetable.NewResult(p.Name())
	for r := headerRow + 1; r < len(grid); r++ {
		raw := cell.Clean(cols.get(grid, r, fieldCode))
		if len(raw) < 2 {
			continue
		}
		code, ok := cell.ExtractUnitCode(raw)
		if !ok {
			code = strings.ToUpper(raw)
		}

		e := newEntry(params, code, cell.Clean(cols.get(grid, r, fieldName)))
		e.Day = cell.NormalizeDayName(cell.Clean(cols.get(grid, r, fieldDay)))
		e.TimeStart, e.TimeEnd = listTimes(grid, r, cols)
		e.Venue = cell.Clean(cols.get(grid, r, fieldVenue))
		e.Lecturer = cell.Clean(cols.get(grid, r, fieldLecturer))

		if kind := cell.Clean(cols.get(grid, r, fieldType)); kind != "" {
			e.SessionType = cell.ClassifySessionType(kind)
		} else {
			e.SessionType = cell.ClassifySessionType(e.UnitCode + " " + e.UnitName)
		}

		result.Entries = append(result.Entries, e)
		result.AddUnit(timetable.Unit{Code: code, Name: e.UnitName, Department: cell.Department(code)})
	}

	return result, nil
}

// isListHeader accepts a row with a unit column among at least three mapped
// columns. A dated row without a day column is an exam schedule and is left
// for the exam parser.
func isListHeader(m columns) bool {
	if len(m) < 3 || !m.has(fieldCode) {
		return false
	}
	return m.has(fieldDay) || !m.has(fieldDate)
}

// listTimes reads either a combined time column or separate start and end
// columns. A start cell holding a full "start-end" range is accepted when the
// end cell is empty. Both values are set or neither is.
func listTimes(grid timetable.Grid, r int, cols columns) (string, string) {
	if cols.has(fieldTime) && !cols.has(fieldStart) {
		if tr, ok := cell.ParseTimeRange(cell.Clean(cols.get(grid, r, fieldTime))); ok {
			return tr.Start, tr.End
		}
		return "", ""
	}

	startCell := cols.get(grid, r, fieldStart)
	endCell := cols.get(grid, r, fieldEnd)
	if cell.Clean(endCell) == "" {
		if tr, ok := cell.ParseTimeRange(cell.Clean(startCell)); ok {
			return tr.Start, tr.End
		}
	}

	start, ok := cell.ParseTime(startCell)
	if !ok {
		return "", ""
	}
	end, ok := cell.ParseTime(endCell)
	if !ok {
		return "", ""
	}
	return start, end
}
