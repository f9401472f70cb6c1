package cell

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// "7:00-10:00", "07:00 - 10:00", "7.00 – 10.00"
	timeRangeRe = regexp.MustCompile(`(\d{1,2})[:.](\d{2})\s*[-–—]\s*(\d{1,2})[:.](\d{2})`)
	clockRe     = regexp.MustCompile(`(?i)(\d{1,2})[:.](\d{2})(?:[:.](\d{2}))?\s*(a\.?m\.?|p\.?m\.?)?`)

	slashDateRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	isoDateRe   = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	dashDateRe  = regexp.MustCompile(`\b(\d{1,2})-(\d{1,2})-(\d{4})\b`)
)

// TimeRange is a start/end pair in "HH:MM:SS" form.
type TimeRange struct {
	Start string
	End   string
}

// ParseTimeRange finds an "H:MM - H:MM" range in text. The second return
// value is false when text holds no range, which means "not a time cell".
func ParseTimeRange(text string) (TimeRange, bool) {
	m := timeRangeRe.FindStringSubmatch(text)
	if m == nil {
		return TimeRange{}, false
	}
	start, ok := clock(m[1], m[2], "00")
	if !ok {
		return TimeRange{}, false
	}
	end, ok := clock(m[3], m[4], "00")
	if !ok {
		return TimeRange{}, false
	}
	return TimeRange{Start: start, End: end}, true
}

// ParseTime reads a single clock time from a cell. Besides "H:MM[:SS]" text
// with an optional am/pm suffix it accepts the day fraction spreadsheets use
// for time-formatted cells (0.375 is 09:00).
func ParseTime(v any) (string, bool) {
	if f, ok := v.(float64); ok && f >= 0 && f < 1 {
		secs := int(math.Round(f * 86400))
		return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs/60%60, secs%60), true
	}

	m := clockRe.FindStringSubmatch(Clean(v))
	if m == nil {
		return "", false
	}
	hour, _ := strconv.Atoi(m[1])
	switch suffix := strings.ToLower(strings.ReplaceAll(m[4], ".", "")); suffix {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	seconds := m[3]
	if seconds == "" {
		seconds = "00"
	}
	return clock(strconv.Itoa(hour), m[2], seconds)
}

func clock(h, m, s string) (string, bool) {
	hour, _ := strconv.Atoi(h)
	minute, _ := strconv.Atoi(m)
	second, _ := strconv.Atoi(s)
	if hour > 24 || minute > 59 || second > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d:%02d", hour, minute, second), true
}

// ParseDate converts a date to ISO "YYYY-MM-DD". Patterns are tried in order:
// DD/MM/YYYY, YYYY-MM-DD, DD-MM-YYYY. Slash dates are always day-first. The
// first pattern that matches decides; an impossible date yields false.
func ParseDate(text string) (string, bool) {
	if m := slashDateRe.FindStringSubmatch(text); m != nil {
		return isoDate(m[3], m[2], m[1])
	}
	if m := isoDateRe.FindStringSubmatch(text); m != nil {
		return isoDate(m[1], m[2], m[3])
	}
	if m := dashDateRe.FindStringSubmatch(text); m != nil {
		return isoDate(m[3], m[2], m[1])
	}
	return "", false
}

// LooksLikeDate reports whether text contains a numeric D/M/YYYY date.
func LooksLikeDate(text string) bool {
	return slashDateRe.MatchString(text)
}

func isoDate(y, m, d string) (string, bool) {
	year, _ := strconv.Atoi(y)
	month, _ := strconv.Atoi(m)
	day, _ := strconv.Atoi(d)
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", false
	}
	return t.Format("2006-01-02"), true
}
