package parser

import (
	"fmt"
	"unicode"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/cell"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/timetable"
)

// minFragmentLen drops cell fragments too short to name a class.
const minFragmentLen = 4

// GridParser handles sheets with days as columns and time slots as rows.
// A cell may list several concurrent classes, one per line.
type GridParser struct{}

var _ FormatParser = GridParser{}

func (GridParser) Name() string { return "grid" }

func (GridParser) Description() string {
	return "Days as columns, time slots as rows, classes listed inside cells"
}

// Detect looks for a row among the first few with at least three distinct weekdays.
func (GridParser) Detect(grid timetable.Grid) bool {
	for _, row := range grid.Head(detectRows) {
		seen := make(map[string]bool)
		for _, v := range row {
			if day, ok := cell.WeekdayOf(cell.Text(v)); ok && !cell.IsWeekend(day) {
				seen[day] = true
			}
		}
		if len(seen) >= 3 {
			return true
		}
	}
	return false
}

type dayHeader struct {
	row     int
	timeCol int
	days    map[int]string // column -> canonical day
	order   []int          // day columns left to right
}

func findDayHeader(grid timetable.Grid) (dayHeader, bool) {
	for r, row := range grid.Head(headerRows) {
		h := dayHeader{row: r, days: make(map[int]string)}
		seen := make(map[string]bool)
		timeCol := -1
		for c, v := range row {
			text := cell.Text(v)
			day, ok := cell.WeekdayOf(text)
			if !ok {
				if timeCol < 0 && cell.ContainsAny(cell.Lower(v), "time") {
					timeCol = c
				}
				continue
			}
			// A day heading merged across columns repeats; every column counts.
			seen[day] = true
			h.days[c] = day
			h.order = append(h.order, c)
		}
		if len(seen) >= 3 {
			h.timeCol = 0
			if timeCol >= 0 {
				h.timeCol = timeCol
			}
			return h, true
		}
	}
	return dayHeader{}, false
}

func (p GridParser) Parse(grid timetable.Grid, params timetable.Params) (*timetable.Result, error) {
	header, ok := findDayHeader(grid)
	if !ok {
		return nil, fmt.Errorf("%s: %w: no row with three or more day names", p.Name(), ErrNoHeader)
	}

	result := timetable.NewResult(p.Name())
	var slot cell.TimeRange
	haveSlot := false

	for r := header.row + 1; r < len(grid); r++ {
		// Continuation rows inherit the last time slot seen.
		if tr, ok := cell.ParseTimeRange(cell.Clean(grid.Cell(r, header.timeCol))); ok {
			slot, haveSlot = tr, true
		}
		if !haveSlot {
			continue
		}

		for _, c := range header.order {
			if c == header.timeCol {
				continue
			}
			for _, text := range cell.Lines(grid.Cell(r, c)) {
				if len(text) < minFragmentLen {
					continue
				}
				for _, e := range fragmentEntries(text, params) {
					e.Day = header.days[c]
					e.TimeStart, e.TimeEnd = slot.Start, slot.End
					result.Entries = append(result.Entries, e)
					result.AddUnit(timetable.Unit{Code: e.UnitCode, Department: cell.Department(e.UnitCode)})
				}
			}
		}
	}

	return result, nil
}

// fragmentEntries emits one entry per unit code named by a fragment. All
// codes share the fragment's venue, lecturer and session type.
func fragmentEntries(text string, params timetable.Params) []timetable.Entry {
	f := parseFragment(text)

	codes := cell.ExtractUnitCodes(f.codeText)
	if len(codes) == 0 {
		codes = cell.ExtractUnitCodes(text)
		// "LT1 - BCB 105": the codes sat in the venue slot, so the parts swap.
		if _, inVenue := cell.ExtractUnitCode(f.venue); inVenue {
			f.venue = f.codeText
		}
	}
	if len(codes) == 0 {
		if !looksLikeCode(f.code) {
			return nil
		}
		codes = []string{f.code}
	}

	kind := cell.ClassifySessionType(text)
	entries := make([]timetable.Entry, 0, len(codes))
	for _, code := range codes {
		e := newEntry(params, code, "")
		e.SessionType = kind
		e.Venue = f.venue
		e.Lecturer = f.lecturer
		entries = append(entries, e)
	}
	return entries
}

// looksLikeCode accepts nonstandard codes such as "CS1A" but rejects plain
// words like "LUNCH" or "BREAK".
func looksLikeCode(s string) bool {
	if len(s) < 2 {
		return false
	}
	var letter, digit bool
	for _, r := range s {
		letter = letter || unicode.IsLetter(r)
		digit = digit || unicode.IsDigit(r)
	}
	return letter && digit
}
