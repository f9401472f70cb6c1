package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/timetable"
)

// DefaultTimezone is used when no timezone is configured.
const DefaultTimezone = "Africa/Nairobi"

// DefaultWeeks is the teaching-week count used for calendar export.
const DefaultWeeks = 14

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	InstitutionID string `json:"institution_id,omitempty"`
	Semester      int    `json:"semester,omitempty"`
	Year          int    `json:"year,omitempty"`
	SemesterStart string `json:"semester_start,omitempty"` // YYYY-MM-DD
	Weeks         int    `json:"weeks,omitempty"`
	Timezone      string `json:"timezone,omitempty"`
	AccentColor   string `json:"accent_color,omitempty"`
	FillMerged    bool   `json:"fill_merged,omitempty"`
}

// Params returns the import context stamped onto parsed entries.
func (c *AppConfig) Params() timetable.Params {
	return timetable.Params{
		Semester:      c.Semester,
		Year:          c.Year,
		InstitutionID: c.InstitutionID,
	}
}

// Location resolves the configured timezone.
func (c *AppConfig) Location() (*time.Location, error) {
	name := c.Timezone
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("could not load timezone %q: %w", name, err)
	}
	return loc, nil
}

// Start parses SemesterStart. The zero time means it is not set.
func (c *AppConfig) Start() (time.Time, error) {
	if c.SemesterStart == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", c.SemesterStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid semester_start %q, expected YYYY-MM-DD: %w", c.SemesterStart, err)
	}
	return t, nil
}

// WeekCount returns Weeks, or DefaultWeeks when unset.
func (c *AppConfig) WeekCount() int {
	if c.Weeks > 0 {
		return c.Weeks
	}
	return DefaultWeeks
}

// getConfigPath returns the absolute path to ~/.hallpass.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".hallpass.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just return an empty default configuration
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	if _, err := cfg.Start(); err != nil {
		return err
	}

	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
