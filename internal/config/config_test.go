package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/bgcircles/internal/scene"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Count != 15 {
		t.Errorf("expected count 15, got %d", cfg.Count)
	}
	if cfg.MinSize != 50 || cfg.MaxSize != 200 {
		t.Errorf("expected size range 50-200, got %f-%f", cfg.MinSize, cfg.MaxSize)
	}
	if cfg.MinOpacity != 0.1 || cfg.MaxOpacity != 0.3 {
		t.Errorf("expected opacity range 0.1-0.3, got %f-%f", cfg.MinOpacity, cfg.MaxOpacity)
	}
	if !cfg.Animated {
		t.Error("animation should be enabled by default")
	}
	if cfg.ZIndex != 0 || cfg.ClassName != "" {
		t.Error("expected zero z-index and empty class name")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "circles.yaml")
	data := []byte("count: 3\ncolor: \"#ffffff\"\nanimated: false\npulse: bounded\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Count != 3 || cfg.Color != "#ffffff" || cfg.Animated {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.MaxSize != scene.DefaultMaxSize {
		t.Errorf("expected default max size to survive, got %f", cfg.MaxSize)
	}

	opts, err := cfg.SceneOptions()
	if err != nil {
		t.Fatalf("scene options: %v", err)
	}
	if opts.Pulse != scene.PulseBounded {
		t.Errorf("expected bounded pulse, got %v", opts.Pulse)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := GetPreset("bokeh")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("count: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestSceneOptionsUnknownPulse(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pulse = "wobble"
	if _, err := cfg.SceneOptions(); !errors.Is(err, scene.ErrUnknownPulse) {
		t.Errorf("expected ErrUnknownPulse, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("dense")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Count != 60 {
		t.Errorf("expected count 60, got %d", cfg.Count)
	}

	cfg.Count = 1
	if Presets["dense"].Count != 60 {
		t.Error("GetPreset returned a shared pointer")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
}

func TestLoadOverPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "over.yaml")
	if err := os.WriteFile(path, []byte("min_size: 10\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base := GetPreset("dense")
	cfg, err := LoadOver(path, base)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.MinSize != 10 {
		t.Errorf("expected min_size 10 from file, got %f", cfg.MinSize)
	}
	if cfg.Count != 60 || cfg.MaxSize != 80 {
		t.Errorf("expected dense values to survive, got count=%d max_size=%f", cfg.Count, cfg.MaxSize)
	}
	if base.MinSize != 20 {
		t.Errorf("base was modified: min_size=%f", base.MinSize)
	}
}
