package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/timetable"
)

func TestConfigLoadSave(t *testing.T) {
	tempDir := t.TempDir()

	// Override the home directory environment variable for testing
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir) // For Windows compatibility in tests

	// 1. Test Load with no existing file
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error when loading missing config, got: %v", err)
	}
	if cfg == nil {
		t.Fatalf("expected empty config to be returned, got nil")
	}

	// 2. Modify and Save the config
	cfg.InstitutionID = "kabarak"
	cfg.Semester = 2
	cfg.Year = 2026
	cfg.SemesterStart = "2026-01-05"
	cfg.Weeks = 12
	cfg.FillMerged = true

	err = Save(cfg)
	if err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	// Verify the file was actually created
	configPath := filepath.Join(tempDir, ".hallpass.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("expected config file to be created at %s", configPath)
	}

	// 3. Test Load with existing file
	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load existing config: %v", err)
	}

	if !reflect.DeepEqual(cfg, loadedCfg) {
		t.Errorf("loaded config does not match saved config.\nGot: %+v\nExpected: %+v", loadedCfg, cfg)
	}
}

func TestConfigParseError(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	// Write invalid JSON to the config file
	configPath := filepath.Join(tempDir, ".hallpass.json")
	if err := os.WriteFile(configPath, []byte("invalid json { content"), 0644); err != nil {
		t.Fatalf("failed to write invalid json: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Errorf("expected error when loading invalid json, got nil")
	}
}

func TestConfigSaveRejectsBadStart(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	if err := Save(&AppConfig{SemesterStart: "05/01/2026"}); err == nil {
		t.Errorf("expected error for a non ISO semester start")
	}
	if _, err := os.Stat(filepath.Join(tempDir, ".hallpass.json")); !os.IsNotExist(err) {
		t.Errorf("expected no config file to be written")
	}
}

func TestConfigHelpers(t *testing.T) {
	cfg := &AppConfig{InstitutionID: "kabarak", Semester: 1, Year: 2026, SemesterStart: "2026-01-05"}

	want := timetable.Params{Semester: 1, Year: 2026, InstitutionID: "kabarak"}
	if got := cfg.Params(); got != want {
		t.Errorf("Params() = %+v, want %+v", got, want)
	}

	start, err := cfg.Start()
	if err != nil || !start.Equal(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Start() = %v, %v", start, err)
	}

	if cfg.WeekCount() != DefaultWeeks {
		t.Errorf("expected default week count, got %d", cfg.WeekCount())
	}

	if _, err := (&AppConfig{Timezone: "Mars/Olympus"}).Location(); err == nil {
		t.Errorf("expected error for unknown timezone")
	}
}
