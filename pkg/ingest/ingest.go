// Package ingest runs the full import: decode a file, consult the cache,
// and dispatch the grid to the format parsers.
package ingest

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/cache"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/parser"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/reader"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/timetable"
)

// Importer turns timetable files into parsed results.
type Importer struct {
	engine   *parser.Engine
	log      *slog.Logger
	useCache bool
}

// New creates an importer. With useCache set, results are stored under
// ~/.hallpass_cache and reused for identical files and settings.
func New(engine *parser.Engine, log *slog.Logger, useCache bool) *Importer {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Importer{engine: engine, log: log, useCache: useCache}
}

// ImportFile reads and parses the file at path.
func (im *Importer) ImportFile(path string, params timetable.Params, opts reader.Options) (*timetable.Result, error) {
	if _, err := reader.FormatOf(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return im.ImportBytes(filepath.Base(path), data, params, opts)
}

// ImportBytes parses data, using name to choose the decoder.
func (im *Importer) ImportBytes(name string, data []byte, params timetable.Params, opts reader.Options) (*timetable.Result, error) {
	var key string
	if im.useCache {
		key = cache.Key(data, params, opts)
		if res, ok := cache.Read(key); ok {
			im.log.Debug("cache hit", "file", name, "key", key[:12])
			return res, nil
		}
	}

	grid, err := reader.ReadBytes(name, data, opts)
	if err != nil {
		return nil, err
	}

	res, err := im.engine.Parse(grid, params)
	if err != nil {
		return nil, err
	}

	if im.useCache {
		cache.Write(key, res)
	}
	im.log.Info("timetable imported", "file", name, "format", res.Format,
		"entries", len(res.Entries), "units", len(res.Units))
	return res, nil
}
