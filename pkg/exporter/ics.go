package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/timetable"
)

// uidSpace namespaces event UIDs so the same entry always exports the same UID.
var uidSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://hallpass/timetable"))

var weekdays = map[string]time.Weekday{
	"MONDAY":    time.Monday,
	"TUESDAY":   time.Tuesday,
	"WEDNESDAY": time.Wednesday,
	"THURSDAY":  time.Thursday,
	"FRIDAY":    time.Friday,
	"SATURDAY":  time.Saturday,
	"SUNDAY":    time.Sunday,
}

// ICSOptions anchor weekly sessions to a real semester.
type ICSOptions struct {
	SemesterStart time.Time // first day of teaching
	Weeks         int       // number of weekly occurrences
	Location      *time.Location
}

// GenerateICS writes entries as an iCalendar feed. Weekly sessions recur
// from the first matching weekday on or after SemesterStart. Exams are
// single events, all-day when they carry no time. Entries that cannot be
// placed on a calendar are skipped.
func GenerateICS(entries []timetable.Entry, opts ICSOptions, w io.Writer) error {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	if opts.Weeks < 1 {
		return fmt.Errorf("weeks must be positive, got %d", opts.Weeks)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//hallpass//timetable//EN")

	now := time.Now()
	for _, e := range entries {
		sl, ok := slotOf(e, opts, loc)
		if !ok {
			continue
		}

		event := cal.AddEvent(eventUID(e))
		event.SetDtStampTime(now)
		if sl.allDay {
			event.SetAllDayStartAt(sl.start)
			event.SetAllDayEndAt(sl.end)
		} else {
			event.SetStartAt(sl.start)
			event.SetEndAt(sl.end)
		}
		if sl.weekly {
			event.AddRrule(fmt.Sprintf("FREQ=WEEKLY;COUNT=%d", opts.Weeks))
		}
		event.SetSummary(summary(e))
		if e.Venue != "" {
			event.SetLocation(e.Venue)
		}
		event.SetDescription(description(e))
	}

	return cal.SerializeTo(w)
}

// CountEvents reports how many entries GenerateICS would place on the
// calendar with opts.
func CountEvents(entries []timetable.Entry, opts ICSOptions) int {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	n := 0
	for _, e := range entries {
		if _, ok := slotOf(e, opts, loc); ok {
			n++
		}
	}
	return n
}

type slot struct {
	start, end time.Time
	allDay     bool
	weekly     bool
}

// slotOf places an entry on the calendar. It reports false when the entry
// has no usable anchor.
func slotOf(e timetable.Entry, opts ICSOptions, loc *time.Location) (slot, bool) {
	// Parsed exam sheets only carry a date; times come from entries built
	// or edited by callers.
	if e.ExamDate != "" {
		day, err := time.ParseInLocation("2006-01-02", e.ExamDate, loc)
		if err != nil {
			return slot{}, false
		}
		start, okStart := at(day, e.TimeStart, loc)
		end, okEnd := at(day, e.TimeEnd, loc)
		if okStart && okEnd && end.After(start) {
			return slot{start: start, end: end}, true
		}
		return slot{start: day, end: day.AddDate(0, 0, 1), allDay: true}, true
	}

	if !e.IsWeekly() || opts.SemesterStart.IsZero() {
		return slot{}, false
	}
	wd, ok := weekdays[e.Day]
	if !ok {
		return slot{}, false
	}

	first := firstOnOrAfter(opts.SemesterStart, wd, loc)
	start, okStart := at(first, e.TimeStart, loc)
	end, okEnd := at(first, e.TimeEnd, loc)
	if !okStart || !okEnd || !end.After(start) {
		return slot{}, false
	}
	return slot{start: start, end: end, weekly: true}, true
}

// firstOnOrAfter returns midnight in loc of the first wd on or after the
// calendar date of t.
func firstOnOrAfter(t time.Time, wd time.Weekday, loc *time.Location) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	offset := (int(wd) - int(day.Weekday()) + 7) % 7
	return day.AddDate(0, 0, offset)
}

// at combines a date with an "HH:MM:SS" clock time.
func at(day time.Time, clock string, loc *time.Location) (time.Time, bool) {
	if clock == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("15:04:05", clock, loc)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), true
}

func eventUID(e timetable.Entry) string {
	key := strings.Join([]string{
		e.InstitutionID, fmt.Sprint(e.Year), fmt.Sprint(e.Semester),
		e.UnitCode, string(e.SessionType), e.Day, e.TimeStart, e.TimeEnd, e.ExamDate, e.Venue,
	}, "|")
	return uuid.NewSHA1(uidSpace, []byte(key)).String() + "@hallpass"
}

func summary(e timetable.Entry) string {
	title := e.UnitCode
	if e.UnitName != "" && e.UnitName != e.UnitCode {
		title = e.UnitCode + " " + e.UnitName
	}
	if e.SessionType == timetable.Lecture || e.SessionType == "" {
		return title
	}
	return fmt.Sprintf("%s (%s)", title, strings.ToLower(string(e.SessionType)))
}

func description(e timetable.Entry) string {
	lines := []string{"Type: " + string(e.SessionType)}
	if e.Lecturer != "" {
		lines = append(lines, "Lecturer: "+e.Lecturer)
	}
	return strings.Join(lines, "\n")
}
