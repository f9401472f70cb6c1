package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/parser"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/timetable"
)

var dayOrder = []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}

// Summary renders a parsed result as a unit table plus per-day counts.
func Summary(res *timetable.Result) string {
	var b strings.Builder

	fmt.Fprintln(&b, accentStyle.Render(fmt.Sprintf("Parsed %d sessions across %d units (%s layout)",
		len(res.Entries), len(res.Units), res.Format)))

	sessions := make(map[string]int)
	for _, e := range res.Entries {
		sessions[e.UnitCode]++
	}
	codes := make([]string, 0, len(res.Units))
	for code := range res.Units {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers("Code", "Name", "Department", "Sessions")
	for _, code := range codes {
		u := res.Units[code]
		t.Row(u.Code, u.Name, u.Department, strconv.Itoa(sessions[code]))
	}
	fmt.Fprintln(&b, t.Render())

	if line := dayCounts(res.Entries); line != "" {
		fmt.Fprintln(&b, mutedStyle.Render(line))
	}
	return b.String()
}

// dayCounts formats "Monday 4 · Tuesday 2" for weekly sessions, and the
// exam count when there are exams.
func dayCounts(entries []timetable.Entry) string {
	counts := make(map[string]int)
	exams := 0
	for _, e := range entries {
		if e.SessionType == timetable.Exam {
			exams++
			continue
		}
		if e.Day != "" {
			counts[e.Day]++
		}
	}

	title := cases.Title(language.English)
	var parts []string
	for _, day := range dayOrder {
		if n := counts[day]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", title.String(strings.ToLower(day)), n))
		}
	}
	if exams > 0 {
		parts = append(parts, fmt.Sprintf("Exams %d", exams))
	}
	return strings.Join(parts, " · ")
}

// Detections renders the verdict of every registered parser.
func Detections(results []parser.Detection) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers("Parser", "Detector", "Entries", "Outcome")

	for _, d := range results {
		detector := "no match"
		if d.Matched {
			detector = "match"
		}
		outcome := ""
		switch {
		case d.Selected:
			outcome = accentStyle.Render("selected")
		case d.Err != nil:
			outcome = errorStyle.Render(d.Err.Error())
		case d.Matched:
			outcome = "no entries"
		}
		t.Row(d.Parser, detector, strconv.Itoa(d.Entries), outcome)
	}
	return t.Render()
}
