package config

import (
	"os"
	"path/filepath"
	"testing"

	"srtforge/internal/domain/transcript"
	"srtforge/internal/pipeline"
)

func writeTuning(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.toml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_OverridesOverDefaults(t *testing.T) {
	path := writeTuning(t, "pre_split_max_sec = 45.0\nsplit_strategy = \"proportional\"\nmin_chars = 10\n")
	tuning, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if tuning.PreSplitMaxSec != 45.0 {
		t.Fatalf("override not applied: %v", tuning.PreSplitMaxSec)
	}
	if tuning.MinChars != 10 {
		t.Fatalf("override not applied: %v", tuning.MinChars)
	}
	// Untouched keys keep the reference tuning.
	if tuning.JoinSec != 90 || tuning.WrapWidth != 72 {
		t.Fatalf("defaults lost: %+v", tuning)
	}
}

func TestLoad_UnknownKeyFails(t *testing.T) {
	path := writeTuning(t, "min_secs = 2.0\n")
	if _, err := Load(path); err == nil {
		t.Fatal("typo'd key must not silently fall back to defaults")
	}
}

func TestApply(t *testing.T) {
	tuning := Default()
	tuning.GapMerge = 2.5
	tuning.SplitStrategy = "words"

	cfg := pipeline.Default()
	cfg.InputJSON = "in.json"
	cfg = tuning.Apply(cfg)

	if cfg.GapMerge != 2.5 {
		t.Fatalf("tuning not applied: %v", cfg.GapMerge)
	}
	if cfg.SplitStrategy != transcript.SplitWords {
		t.Fatalf("strategy not applied: %v", cfg.SplitStrategy)
	}
	if cfg.InputJSON != "in.json" {
		t.Fatal("Apply must leave path fields alone")
	}
}
