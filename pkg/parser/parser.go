// Package parser detects which layout a registrar timetable sheet uses and
// extracts normalized sessions from it.
package parser

import (
	"errors"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/timetable"
)

const (
	// detectRows bounds how far detectors look; headerRows bounds the header search in Parse.
	detectRows = 5
	headerRows = 10
)

var (
	ErrEmptyGrid    = errors.New("file appears empty")
	ErrUnrecognized = errors.New("could not detect timetable format")
	ErrNoHeader     = errors.New("header row not found")
)

// FormatParser handles one timetable layout.
// Implementations keep no state between calls and are safe for concurrent use.
type FormatParser interface {
	// Name identifies the layout (e.g. "grid").
	Name() string

	// Description is a one-line human summary of the layout.
	Description() string

	// Detect inspects the first rows of the grid and reports whether the
	// layout's structural signature is present. It must be cheap.
	Detect(grid timetable.Grid) bool

	// Parse extracts entries and units. Malformed rows are skipped. An error
	// is returned only when the layout's anchor (header row, day columns)
	// cannot be located at all.
	Parse(grid timetable.Grid, params timetable.Params) (*timetable.Result, error)
}

func newEntry(params timetable.Params, code, name string) timetable.Entry {
	if name == "" {
		name = code
	}
	return timetable.Entry{
		UnitCode:      code,
		UnitName:      name,
		SessionType:   timetable.Lecture,
		Semester:      params.Semester,
		Year:          params.Year,
		InstitutionID: params.InstitutionID,
	}
}
