package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Title != "Interactive Piano" || cfg.KeyCount != 16 {
		t.Fatalf("defaults = %q/%d", cfg.Title, cfg.KeyCount)
	}
	if cfg.Audio.SampleRate != 44100 {
		t.Fatalf("sample rate = %d, want 44100", cfg.Audio.SampleRate)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")
	cfg := DefaultConfig()
	cfg.Title = "Practice"
	cfg.KeyCount = 8
	cfg.Palette = "ivory"
	cfg.Audio.Disabled = true

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if got.Title != "Practice" || got.KeyCount != 8 || got.Palette != "ivory" || !got.Audio.Disabled {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestLoadNormalizesZeroValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"title":"","keyCount":-3,"audio":{"sampleRate":0}}`), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Title != DefaultTitle || cfg.KeyCount != DefaultKeyCount || cfg.Audio.SampleRate != 44100 {
		t.Fatalf("not normalized: %+v", cfg)
	}
}

func TestLoadBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{`), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
