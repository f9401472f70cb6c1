package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridCell(t *testing.T) {
	g := Grid{{"a", nil}, {"b"}}
	assert.Equal(t, "a", g.Cell(0, 0))
	assert.Nil(t, g.Cell(0, 1))
	assert.Nil(t, g.Cell(1, 1), "short rows read as empty")
	assert.Nil(t, g.Cell(5, 0))
	assert.Nil(t, g.Cell(-1, 0))
	assert.Len(t, g.Head(1), 1)
	assert.Len(t, g.Head(10), 2)
}

func TestAddUnitFirstSeenWins(t *testing.T) {
	r := NewResult("list")
	r.AddUnit(Unit{Code: "BCB 105"})
	r.AddUnit(Unit{Code: "BCB 105", Name: "Cell Biology"})
	assert.Equal(t, "BCB 105", r.Units["BCB 105"].Name)
}

func TestOnlyAndCodes(t *testing.T) {
	r := NewResult("grid")
	for _, code := range []string{"SMA 201", "BCB 105", "SMA 201"} {
		r.Entries = append(r.Entries, Entry{UnitCode: code})
		r.AddUnit(Unit{Code: code})
	}
	assert.Equal(t, []string{"SMA 201", "BCB 105"}, r.Codes())

	only := r.Only([]string{"SMA 201"})
	assert.Equal(t, "grid", only.Format)
	assert.Len(t, only.Entries, 2)
	assert.Len(t, only.Units, 1)
	assert.Len(t, r.Entries, 3, "the original is untouched")
}

func TestIsWeekly(t *testing.T) {
	assert.True(t, Entry{Day: "MONDAY", TimeStart: "08:00:00", TimeEnd: "10:00:00"}.IsWeekly())
	assert.False(t, Entry{Day: "MONDAY"}.IsWeekly())
	assert.False(t, Entry{ExamDate: "2026-04-20"}.IsWeekly())
}
