package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/parser"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/timetable"
)

func TestDayCounts(t *testing.T) {
	entries := []timetable.Entry{
		{UnitCode: "BCB 105", Day: "TUESDAY"},
		{UnitCode: "SMA 201", Day: "MONDAY"},
		{UnitCode: "SMA 201", Day: "MONDAY"},
		{UnitCode: "BIT 113", SessionType: timetable.Exam, ExamDate: "2026-04-20"},
		{UnitCode: "GEN ED"},
	}
	assert.Equal(t, "Monday 2 · Tuesday 1 · Exams 1", dayCounts(entries))
	assert.Empty(t, dayCounts(nil))
}

func TestSummary(t *testing.T) {
	res := timetable.NewResult("grid")
	res.Entries = append(res.Entries, timetable.Entry{UnitCode: "BCB 105", Day: "MONDAY"})
	res.AddUnit(timetable.Unit{Code: "BCB 105", Name: "Cell Biology", Department: "BCB"})

	out := Summary(res)
	assert.Contains(t, out, "Parsed 1 sessions across 1 units (grid layout)")
	assert.Contains(t, out, "Cell Biology")
	assert.Contains(t, out, "Monday 1")
}

func TestDetections(t *testing.T) {
	out := Detections([]parser.Detection{
		{Parser: "grid"},
		{Parser: "list", Matched: true, Err: errors.New("list: header row not found")},
		{Parser: "exam", Matched: true, Entries: 3, Selected: true},
	})
	for _, want := range []string{"grid", "no match", "header row not found", "selected"} {
		assert.True(t, strings.Contains(out, want), want)
	}
}
