package cell

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/timetable"
)

// Two to four letters, an optional space or hyphen, three digits and an
// optional trailing letter: "BCB105", "BCB 105", "bcb-105", "SMA 201B".
// The suffix letter only counts when nothing alphanumeric follows it, so a
// code run into other text ("BCB105LT1") still matches. The match may
// include one trailing separator; only the groups are used.
var unitCodeRe = regexp.MustCompile(`(?i)\b([A-Z]{2,4})[\s-]?(\d{3})(?:([A-Z])(?:[^A-Za-z0-9]|$)|[^0-9]|$)`)

// ExtractUnitCode returns the first unit code in text in canonical
// "LETTERS DIGITS" form.
func ExtractUnitCode(text string) (string, bool) {
	m := unitCodeRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return canonicalCode(m), true
}

// ExtractUnitCodes returns every distinct unit code in text, in order of
// first appearance.
func ExtractUnitCodes(text string) []string {
	var codes []string
	seen := make(map[string]bool)
	for _, m := range unitCodeRe.FindAllStringSubmatch(text, -1) {
		code := canonicalCode(m)
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}
	return codes
}

func canonicalCode(m []string) string {
	return strings.ToUpper(m[1]) + " " + m[2] + strings.ToUpper(m[3])
}

// Department returns the leading letter prefix of a unit code ("BCB" for
// "BCB 105"), or "" when the code does not start with letters.
func Department(code string) string {
	end := strings.IndexFunc(code, func(r rune) bool { return !unicode.IsLetter(r) })
	if end < 0 {
		end = len(code)
	}
	return strings.ToUpper(code[:end])
}

// Keyword groups checked in order; the first group with a hit wins.
var sessionKeywords = []struct {
	kind     timetable.SessionType
	keywords []string
}{
	{timetable.Lab, []string{"lab", "practical", "prac"}},
	{timetable.Tutorial, []string{"tutorial", "tut"}},
	{timetable.Exam, []string{"exam"}},
	{timetable.Lecture, []string{"lecture", "lec"}},
}

// ClassifySessionType infers the session type from free text by
// case-insensitive substring match. Lecture is the default.
func ClassifySessionType(text string) timetable.SessionType {
	lower := strings.ToLower(text)
	for _, group := range sessionKeywords {
		if ContainsAny(lower, group.keywords...) {
			return group.kind
		}
	}
	return timetable.Lecture
}

var dayNames = map[string]string{
	"mon": "MONDAY", "monday": "MONDAY",
	"tue": "TUESDAY", "tues": "TUESDAY", "tuesday": "TUESDAY",
	"wed": "WEDNESDAY", "weds": "WEDNESDAY", "wednesday": "WEDNESDAY",
	"thu": "THURSDAY", "thur": "THURSDAY", "thurs": "THURSDAY", "thursday": "THURSDAY",
	"fri": "FRIDAY", "friday": "FRIDAY",
	"sat": "SATURDAY", "saturday": "SATURDAY",
	"sun": "SUNDAY", "sunday": "SUNDAY",
}

// NormalizeDayName maps a day name or abbreviation to its canonical upper
// case form. Unrecognized input comes back upper-cased as-is.
func NormalizeDayName(text string) string {
	cleaned := Clean(text)
	if cleaned == "" {
		return ""
	}
	key := strings.TrimSuffix(strings.ToLower(cleaned), ".")
	if day, ok := dayNames[key]; ok {
		return day
	}
	if day, ok := WeekdayOf(cleaned); ok && strings.HasPrefix(key, strings.ToLower(day[:3])) {
		return day
	}
	return strings.ToUpper(cleaned)
}

// WeekdayOf finds a whole-word day name or abbreviation in text.
func WeekdayOf(text string) (string, bool) {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool { return !unicode.IsLetter(r) })
	for _, w := range words {
		if day, ok := dayNames[w]; ok {
			return day, true
		}
	}
	return "", false
}

// IsWeekend reports whether a canonical day name is Saturday or Sunday.
func IsWeekend(day string) bool {
	return day == "SATURDAY" || day == "SUNDAY"
}
