// Package cache keeps parsed timetables on disk, keyed by file content.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/reader"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/timetable"
)

// cacheDuration determines how long a parsed timetable is reused
const cacheDuration = 7 * 24 * time.Hour

// CacheEntry represents the disk data format
type CacheEntry struct {
	Timestamp time.Time         `json:"timestamp"`
	Result    *timetable.Result `json:"result"`
}

// Key identifies a parse of data under params and opts. Any change to the
// file bytes or the import settings yields a different key.
func Key(data []byte, params timetable.Params, opts reader.Options) string {
	h := sha256.New()
	h.Write(data)
	fmt.Fprintf(h, "\x00%d|%d|%s|%t", params.Semester, params.Year, params.InstitutionID, opts.FillMerged)
	return hex.EncodeToString(h.Sum(nil))
}

func getCachePath(key string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".hallpass_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	return filepath.Join(cacheDir, key+".json"), nil
}

// Read returns a cached result if a valid, unexpired entry exists for key
func Read(key string) (*timetable.Result, bool) {
	path, err := getCachePath(key)
	if err != nil {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false // File doesn't exist or can't be read
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil || entry.Result == nil {
		return nil, false
	}

	if time.Since(entry.Timestamp) > cacheDuration {
		return nil, false
	}

	if entry.Result.Units == nil {
		entry.Result.Units = make(map[string]timetable.Unit)
	}
	return entry.Result, true
}

// Write saves res under key. Failures are ignored; the next import parses again.
func Write(key string, res *timetable.Result) {
	path, err := getCachePath(key)
	if err != nil {
		return
	}

	entry := CacheEntry{
		Timestamp: time.Now(),
		Result:    res,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}
