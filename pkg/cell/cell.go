// Package cell holds the text heuristics shared by the timetable format
// parsers: cell normalization, time and date parsing, unit code extraction,
// session type inference and day name canonicalization.
package cell

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Text converts a raw cell value to text without collapsing whitespace, so
// multi-line cells keep their line breaks.
func Text(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return formatFloat(val)
	case float32:
		return formatFloat(float64(val))
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

func formatFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Clean converts a cell to trimmed text with whitespace runs collapsed to a
// single space. Empty or absent cells yield "".
func Clean(v any) string {
	return strings.Join(strings.Fields(Text(v)), " ")
}

// Lines splits a cell on line breaks and returns the cleaned, non-empty lines.
func Lines(v any) []string {
	raw := strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(Text(v))
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if cleaned := Clean(line); cleaned != "" {
			lines = append(lines, cleaned)
		}
	}
	return lines
}

// Lower is Clean followed by lower-casing, the form keyword matching works on.
func Lower(v any) string {
	return strings.ToLower(Clean(v))
}

// ContainsAny reports whether s contains any of the given substrings.
func ContainsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
