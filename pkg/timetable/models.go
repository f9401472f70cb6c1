package timetable

// Grid is the decoded 2-D array of spreadsheet cell values.
// A cell is a string, a number, or nil. Parsers never modify it.
type Grid [][]any

// Cell returns the value at row r, column c, or nil when out of range.
func (g Grid) Cell(r, c int) any {
	if r < 0 || r >= len(g) || c < 0 || c >= len(g[r]) {
		return nil
	}
	return g[r][c]
}

// Head returns at most the first n rows.
func (g Grid) Head(n int) Grid {
	if n < len(g) {
		return g[:n]
	}
	return g
}

// SessionType is the kind of a scheduled session.
type SessionType string

const (
	Lecture  SessionType = "LECTURE"
	Tutorial SessionType = "TUTORIAL"
	Lab      SessionType = "LAB"
	Exam     SessionType = "EXAM"
)

// Params is the caller-supplied context stamped onto every entry.
type Params struct {
	Semester      int
	Year          int
	InstitutionID string
}

// Entry is one scheduled session. Empty strings stand for absent values.
// A weekly session has Day, TimeStart and TimeEnd; an exam has ExamDate.
type Entry struct {
	UnitCode      string      `json:"unit_code" yaml:"unit_code"`
	UnitName      string      `json:"unit_name" yaml:"unit_name"`
	SessionType   SessionType `json:"session_type" yaml:"session_type"`
	Day           string      `json:"day,omitempty" yaml:"day,omitempty"`
	TimeStart     string      `json:"time_start,omitempty" yaml:"time_start,omitempty"` // "07:00:00"
	TimeEnd       string      `json:"time_end,omitempty" yaml:"time_end,omitempty"`
	ExamDate      string      `json:"exam_date,omitempty" yaml:"exam_date,omitempty"` // "2026-04-20"
	Venue         string      `json:"venue,omitempty" yaml:"venue,omitempty"`
	Lecturer      string      `json:"lecturer,omitempty" yaml:"lecturer,omitempty"`
	Semester      int         `json:"semester" yaml:"semester"`
	Year          int         `json:"year" yaml:"year"`
	InstitutionID string      `json:"institution_id" yaml:"institution_id"`
}

// IsWeekly reports whether the entry is a recurring weekly session.
func (e Entry) IsWeekly() bool {
	return e.Day != "" && e.TimeStart != "" && e.TimeEnd != ""
}

// Unit is a course unit referenced by the timetable.
type Unit struct {
	Code       string `json:"code" yaml:"code"`
	Name       string `json:"name" yaml:"name"`
	Department string `json:"department,omitempty" yaml:"department,omitempty"`
}

// Result is the output of a successful parse.
type Result struct {
	Format  string          `json:"format" yaml:"format"`
	Entries []Entry         `json:"entries" yaml:"entries"`
	Units   map[string]Unit `json:"units" yaml:"units"`
}

// NewResult returns an empty result for the named format.
func NewResult(format string) *Result {
	return &Result{
		Format:  format,
		Entries: []Entry{},
		Units:   make(map[string]Unit),
	}
}

// AddUnit records a unit the first time its code is seen. Later calls for
// the same code are ignored.
func (r *Result) AddUnit(u Unit) {
	if _, exists := r.Units[u.Code]; exists {
		return
	}
	if u.Name == "" {
		u.Name = u.Code
	}
	r.Units[u.Code] = u
}

// Only returns a copy of r restricted to the given unit codes.
func (r *Result) Only(codes []string) *Result {
	keep := make(map[string]bool, len(codes))
	for _, c := range codes {
		keep[c] = true
	}

	out := NewResult(r.Format)
	for _, e := range r.Entries {
		if keep[e.UnitCode] {
			out.Entries = append(out.Entries, e)
		}
	}
	for code, u := range r.Units {
		if keep[code] {
			out.Units[code] = u
		}
	}
	return out
}

// Codes returns the unit codes in first-seen entry order.
func (r *Result) Codes() []string {
	seen := make(map[string]bool)
	var codes []string
	for _, e := range r.Entries {
		if !seen[e.UnitCode] {
			seen[e.UnitCode] = true
			codes = append(codes, e.UnitCode)
		}
	}
	return codes
}
