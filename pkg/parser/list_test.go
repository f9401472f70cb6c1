package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/timetable"
)

func classList() timetable.Grid {
	return timetable.Grid{
		{"Unit Code", "Unit Name", "Day", "Start Time", "End Time", "Venue", "Lecturer", "Type"},
		{"BCB105", "Cell Biology", "Mon", "8:00", "10:00", "LT1", "Dr Otieno", "Lecture"},
		{"", "Blank row", "Tue", "8:00", "9:00", "LT1", "", ""},
		{"SMA-201", "Calculus", "tues", "10:00-12:00", "", "LT2", "Dr Wanjiku", ""},
		{"BIT 113", "Networks Lab", "Wednesday", 0.375, 0.4583333333, "ICT1", "Mr Kiprop", "PRACTICAL"},
		{"X", "Too short", "Thu", "8:00", "9:00", "", "", ""},
		{"GEN ED", "General Studies", "Fri", "bad", "", "Hall", "", ""},
	}
}

func TestListDetect(t *testing.T) {
	assert.True(t, ListParser{}.Detect(classList()))
	assert.False(t, ListParser{}.Detect(weeklyGrid()))
	assert.False(t, ListParser{}.Detect(timetable.Grid{{"Course", "Venue"}}))
}

func TestListParse(t *testing.T) {
	res, err := ListParser{}.Parse(classList(), testParams)
	require.NoError(t, err)
	require.Len(t, res.Entries, 4)
	assert.Len(t, res.Units, 4)

	bcb := res.Entries[0]
	assert.Equal(t, "BCB 105", bcb.UnitCode)
	assert.Equal(t, "Cell Biology", bcb.UnitName)
	assert.Equal(t, "MONDAY", bcb.Day)
	assert.Equal(t, "08:00:00", bcb.TimeStart)
	assert.Equal(t, "10:00:00", bcb.TimeEnd)
	assert.Equal(t, "LT1", bcb.Venue)
	assert.Equal(t, "Dr Otieno", bcb.Lecturer)
	assert.Equal(t, timetable.Lecture, bcb.SessionType)
	assert.Equal(t, "Cell Biology", res.Units["BCB 105"].Name)
	assert.Equal(t, "BCB", res.Units["BCB 105"].Department)
}

func TestListParseRangeInStartColumn(t *testing.T) {
	res, err := ListParser{}.Parse(classList(), testParams)
	require.NoError(t, err)

	sma := res.Entries[1]
	assert.Equal(t, "SMA 201", sma.UnitCode)
	assert.Equal(t, "TUESDAY", sma.Day)
	assert.Equal(t, "10:00:00", sma.TimeStart)
	assert.Equal(t, "12:00:00", sma.TimeEnd)
	assert.Equal(t, timetable.Lecture, sma.SessionType)
}

func TestListParseSpreadsheetTimes(t *testing.T) {
	res, err := ListParser{}.Parse(classList(), testParams)
	require.NoError(t, err)

	bit := res.Entries[2]
	assert.Equal(t, "09:00:00", bit.TimeStart)
	assert.Equal(t, "11:00:00", bit.TimeEnd)
	assert.Equal(t, timetable.Lab, bit.SessionType)
}

func TestListParseSkipsBadRows(t *testing.T) {
	res, err := ListParser{}.Parse(classList(), testParams)
	require.NoError(t, err)

	gen := res.Entries[3]
	assert.Equal(t, "GEN ED", gen.UnitCode)
	assert.Equal(t, "FRIDAY", gen.Day)
	assert.Empty(t, gen.TimeStart)
	assert.Empty(t, gen.TimeEnd)

	for _, e := range res.Entries {
		assert.NotEqual(t, "X", e.UnitCode)
	}
}

func TestListParseCombinedTimeColumn(t *testing.T) {
	grid := timetable.Grid{
		{"Course", "Day", "Time", "Room", "Lecturer"},
		{"BCB 105", "Mon", "8:00 - 10:00", "LT1", "Dr O"},
	}

	res, err := ListParser{}.Parse(grid, testParams)
	require.NoError(t, err)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, "08:00:00", res.Entries[0].TimeStart)
	assert.Equal(t, "10:00:00", res.Entries[0].TimeEnd)
	assert.Equal(t, "LT1", res.Entries[0].Venue)
}

func TestListParseWithoutDayColumn(t *testing.T) {
	grid := timetable.Grid{
		{"Unit Code", "Time", "Venue", "Lecturer"},
		{"BCB 105", "8:00-10:00", "LT1", "Dr O"},
		{"SMA 201", "10:00-12:00", "LT2", "Dr W"},
	}

	res, err := ListParser{}.Parse(grid, testParams)
	require.NoError(t, err)
	require.Len(t, res.Entries, 2)

	bcb := res.Entries[0]
	assert.Equal(t, "BCB 105", bcb.UnitCode)
	assert.Empty(t, bcb.Day)
	assert.Equal(t, "08:00:00", bcb.TimeStart)
	assert.Equal(t, "10:00:00", bcb.TimeEnd)
	assert.Equal(t, "LT1", bcb.Venue)
	assert.Equal(t, "Dr O", bcb.Lecturer)

	res, err = Default(nil).Parse(grid, testParams)
	require.NoError(t, err)
	assert.Equal(t, "list", res.Format)
}

func TestListParseRequiresUnitColumn(t *testing.T) {
	grid := timetable.Grid{
		{"Day", "Time", "Venue"},
		{"Mon", "9:00-11:00", "Hall A"},
	}

	_, err := ListParser{}.Parse(grid, testParams)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoHeader))
}

func TestListParseLeavesDatedSheets(t *testing.T) {
	grid := timetable.Grid{
		{"Date", "Course Code", "Time", "Venue"},
		{"20/04/2026", "BCB 105", "9:00-11:00", "Hall A"},
	}

	_, err := ListParser{}.Parse(grid, testParams)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoHeader))

	// A dated sheet that also names the day is still a class list.
	grid[0] = append(grid[0], "Day")
	grid[1] = append(grid[1], "Mon")
	res, err := ListParser{}.Parse(grid, testParams)
	require.NoError(t, err)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, "MONDAY", res.Entries[0].Day)
}
