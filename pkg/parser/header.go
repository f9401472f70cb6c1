package parser

import (
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/cell"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/timetable"
)

type field string

const (
	fieldCode     field = "code"
	fieldName     field = "name"
	fieldDay      field = "day"
	fieldTime     field = "time"
	fieldStart    field = "start"
	fieldEnd      field = "end"
	fieldDate     field = "date"
	fieldVenue    field = "venue"
	fieldLecturer field = "lecturer"
	fieldType     field = "type"
)

// fieldRule maps header cells containing any keyword to a field. Rules are
// tried in order, so more specific rules ("lecturer name") must come before
// generic ones ("name").
type fieldRule struct {
	field    field
	keywords []string
}

// columns maps a field to its column index.
type columns map[field]int

func (c columns) has(f field) bool {
	_, ok := c[f]
	return ok
}

// get returns the cell for field f on row r, or nil when f is unmapped.
func (c columns) get(grid timetable.Grid, r int, f field) any {
	col, ok := c[f]
	if !ok {
		return nil
	}
	return grid.Cell(r, col)
}

// mapHeader assigns each header cell to the first matching rule. A field
// keeps the first column it is found in.
func mapHeader(row []any, rules []fieldRule) columns {
	cols := make(columns)
	for i, v := range row {
		text := cell.Lower(v)
		if text == "" {
			continue
		}
		for _, rule := range rules {
			if !cell.ContainsAny(text, rule.keywords...) {
				continue
			}
			if !cols.has(rule.field) {
				cols[rule.field] = i
			}
			break
		}
	}
	return cols
}

// keywordGroupHits counts how many groups have a keyword in some cell of row.
func keywordGroupHits(row []any, groups [][]string) int {
	hits := 0
	for _, group := range groups {
		for _, v := range row {
			if cell.ContainsAny(cell.Lower(v), group...) {
				hits++
				break
			}
		}
	}
	return hits
}
