package exporter

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/timetable"
)

// document is the serialized form of a result, with units in code order
// so output is stable across runs.
type document struct {
	Format  string            `json:"format" yaml:"format"`
	Entries []timetable.Entry `json:"entries" yaml:"entries"`
	Units   []timetable.Unit  `json:"units" yaml:"units"`
}

func newDocument(res *timetable.Result) document {
	units := make([]timetable.Unit, 0, len(res.Units))
	for _, u := range res.Units {
		units = append(units, u)
	}
	sort.Slice(units, func(i, j int) bool { return units[i].Code < units[j].Code })

	entries := res.Entries
	if entries == nil {
		entries = []timetable.Entry{}
	}
	return document{Format: res.Format, Entries: entries, Units: units}
}

// WriteJSON writes res as indented JSON.
func WriteJSON(res *timetable.Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newDocument(res))
}

// WriteYAML writes res as YAML.
func WriteYAML(res *timetable.Result, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(res)); err != nil {
		return err
	}
	return enc.Close()
}

// Formats lists the output formats Write accepts.
var Formats = []string{"json", "yaml", "ics"}

// Write renders res in the named format. ICS output uses icsOpts; the data
// formats ignore them.
func Write(format string, res *timetable.Result, icsOpts ICSOptions, w io.Writer) error {
	switch format {
	case "json":
		return WriteJSON(res, w)
	case "yaml", "yml":
		return WriteYAML(res, w)
	case "ics":
		return GenerateICS(res.Entries, icsOpts, w)
	default:
		return fmt.Errorf("unknown output format %q (want one of %v)", format, Formats)
	}
}

// FormatFromPath guesses an output format from a file extension.
func FormatFromPath(path string) (string, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json", true
	case ".yaml", ".yml":
		return "yaml", true
	case ".ics":
		return "ics", true
	}
	return "", false
}
