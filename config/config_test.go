package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"LYRICS_INPUT", "OUTPUT_DIR", "CHART_DIR", "SQLITE_PATH"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.InputPath != "data/billboard_lyrics.csv" {
		t.Errorf("InputPath = %q", cfg.InputPath)
	}
	if cfg.OutputDir != "output" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.SQLitePath != "" {
		t.Errorf("SQLitePath should default empty, got %q", cfg.SQLitePath)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LYRICS_INPUT", "/tmp/songs.csv")
	t.Setenv("SQLITE_PATH", "features.db")
	cfg := Load()
	if cfg.InputPath != "/tmp/songs.csv" {
		t.Errorf("InputPath = %q, want override", cfg.InputPath)
	}
	if cfg.SQLitePath != "features.db" {
		t.Errorf("SQLitePath = %q, want override", cfg.SQLitePath)
	}
}
