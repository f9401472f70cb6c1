package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/cell"
)

// A hyphen with whitespace on at least one side separates code from venue;
// a bare hyphen may belong to the code itself ("BCB-105").
var spacedHyphenRe = regexp.MustCompile(`\s+[-–]\s*|\s*[-–]\s+`)

// fragment is one class reference split into its parts.
type fragment struct {
	codeText string // the part of the text that names the unit(s)
	code     string // best single code, canonical when recognizable
	venue    string
	lecturer string
}

// parseFragment splits a grid cell fragment such as
// "BIT 113/BCS 110 - ICT1 / DR OTIENO" into code, venue and lecturer.
//
//   - slashes: the last segment is the lecturer unless it names a unit,
//     the rest is split on hyphens into code and venue
//   - hyphens only: code, venue, then lecturer
//   - slash-joined codes without a venue: the whole text names units
//   - otherwise positional: code words first, then venue, then lecturer
func parseFragment(text string) fragment {
	var f fragment
	rest := text

	if strings.Contains(text, "/") {
		idx := strings.LastIndex(text, "/")
		last := cell.Clean(text[idx+1:])
		if _, isCode := cell.ExtractUnitCode(last); !isCode && last != "" {
			f.lecturer = last
			rest = text[:idx]
		}
	}

	switch {
	case spacedHyphenRe.MatchString(rest):
		parts := spacedHyphenRe.Split(rest, -1)
		f.codeText = cell.Clean(parts[0])
		if len(parts) > 1 {
			f.venue = cell.Clean(parts[1])
		}
		if len(parts) > 2 && f.lecturer == "" {
			f.lecturer = cell.Clean(strings.Join(parts[2:], " - "))
		}
	case hasVenueHyphen(rest):
		idx := strings.LastIndex(rest, "-")
		f.codeText = cell.Clean(rest[:idx])
		f.venue = cell.Clean(rest[idx+1:])
	case strings.Contains(rest, "/"):
		f.codeText = cell.Clean(rest)
	default:
		var lecturer string
		f.codeText, f.venue, lecturer = splitPositional(rest)
		if f.lecturer == "" {
			f.lecturer = lecturer
		} else if lecturer != "" {
			f.venue = cell.Clean(f.venue + " " + lecturer)
		}
	}

	if code, ok := cell.ExtractUnitCode(f.codeText); ok {
		f.code = code
	} else {
		f.code = strings.ToUpper(f.codeText)
	}
	return f
}

// hasVenueHyphen reports whether s has an unspaced hyphen that is not the
// separator inside a unit code like "BCB-105".
func hasVenueHyphen(s string) bool {
	idx := strings.LastIndex(s, "-")
	if idx <= 0 || idx == len(s)-1 {
		return false
	}
	tail := strings.Fields(s[idx+1:])
	if len(tail) == 0 {
		return false
	}
	return strings.IndexFunc(tail[0], func(r rune) bool { return !unicode.IsDigit(r) }) >= 0
}

// splitPositional treats the first one or two words as the code, the next
// one or two as the venue and the remainder as the lecturer.
func splitPositional(text string) (code, venue, lecturer string) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return "", "", ""
	}

	n := 1
	if len(words) > 1 && !hasDigit(words[0]) && hasDigit(words[1]) {
		n = 2
	}
	code = strings.Join(words[:n], " ")
	words = words[n:]

	if len(words) > 0 {
		n = 1
		if len(words) > 1 && !hasDigit(words[0]) && hasDigit(words[1]) {
			n = 2
		}
		venue = strings.Join(words[:n], " ")
		words = words[n:]
	}

	lecturer = strings.Join(words, " ")
	return code, venue, lecturer
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}
