package parser

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/cell"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/timetable"
)

// Engine tries its registered parsers in order and returns the first
// non-empty result. Registration order is the tie-break between detectors
// that both fire, so register the most specific layout first.
type Engine struct {
	parsers []FormatParser
	log     *slog.Logger
}

// NewEngine creates an engine with no parsers. A nil logger discards output.
func NewEngine(log *slog.Logger) *Engine {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{log: log}
}

// Default returns an engine with the grid, list and exam parsers, in that order.
func Default(log *slog.Logger) *Engine {
	e := NewEngine(log)
	for _, p := range []FormatParser{GridParser{}, ListParser{}, ExamParser{}} {
		if err := e.Register(p); err != nil {
			panic(err)
		}
	}
	return e
}

// Register appends a parser. It fails for a nil parser, an empty name or a
// name that is already registered.
func (e *Engine) Register(p FormatParser) error {
	if p == nil {
		return fmt.Errorf("format parser cannot be nil")
	}
	name := p.Name()
	if name == "" {
		return fmt.Errorf("format parser name cannot be empty")
	}
	for _, existing := range e.parsers {
		if existing.Name() == name {
			return fmt.Errorf("format parser %q already registered", name)
		}
	}
	e.parsers = append(e.parsers, p)
	return nil
}

// Parsers returns the registered parsers in dispatch order.
func (e *Engine) Parsers() []FormatParser {
	out := make([]FormatParser, len(e.parsers))
	copy(out, e.parsers)
	return out
}

// Detection is one detector's verdict on a grid.
type Detection struct {
	Parser   string
	Matched  bool
	Entries  int
	Err      error
	Selected bool
}

// Explain runs every detector and every matching parser without stopping at
// the first success, and marks the one Parse would pick.
func (e *Engine) Explain(grid timetable.Grid, params timetable.Params) []Detection {
	out := make([]Detection, 0, len(e.parsers))
	selected := false
	for _, p := range e.parsers {
		d := Detection{Parser: p.Name(), Matched: len(grid) > 0 && p.Detect(grid)}
		if d.Matched {
			res, err := p.Parse(grid, params)
			d.Err = err
			if err == nil {
				d.Entries = len(res.Entries)
			}
			if !selected && err == nil && d.Entries > 0 {
				d.Selected, selected = true, true
			}
		}
		out = append(out, d)
	}
	return out
}

// Parse dispatches grid to the first parser whose detector fires and whose
// parse yields at least one entry. A parser error or an empty result moves
// on to the next candidate. When no candidate succeeds the error wraps
// ErrUnrecognized and every candidate's error.
func (e *Engine) Parse(grid timetable.Grid, params timetable.Params) (*timetable.Result, error) {
	if isBlank(grid) {
		return nil, ErrEmptyGrid
	}

	var failures []error
	for _, p := range e.parsers {
		if !p.Detect(grid) {
			e.log.Debug("detector did not match", "parser", p.Name())
			continue
		}

		res, err := p.Parse(grid, params)
		if err != nil {
			e.log.Warn("parser failed, trying next", "parser", p.Name(), "error", err)
			failures = append(failures, err)
			continue
		}
		if len(res.Entries) == 0 {
			e.log.Warn("parser produced no entries, trying next", "parser", p.Name())
			failures = append(failures, fmt.Errorf("%s: no entries found", p.Name()))
			continue
		}

		res.Format = p.Name()
		e.log.Debug("timetable parsed", "parser", p.Name(), "entries", len(res.Entries), "units", len(res.Units))
		return res, nil
	}

	if len(failures) == 0 {
		return nil, ErrUnrecognized
	}
	return nil, fmt.Errorf("%w: %w", ErrUnrecognized, errors.Join(failures...))
}

func isBlank(grid timetable.Grid) bool {
	for _, row := range grid {
		for _, v := range row {
			if cell.Clean(v) != "" {
				return false
			}
		}
	}
	return true
}
