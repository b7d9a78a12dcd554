package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/hysym/internal/physics"
	"github.com/san-kum/hysym/internal/symbolic"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.System != "thermostat" || cfg.Boundary != "drop" || cfg.OutDir != "out" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := DefaultConfig()
	cfg.System = "dcdc"
	cfg.Boundary = "snap"
	cfg.Modes = []ModeConfig{
		{DX: []float64{0.04, 0.04}, Dt: 0.25, Horizon: 1.0},
	}

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.System != "dcdc" || loaded.Boundary != "snap" {
		t.Errorf("loaded = %+v", loaded)
	}
	if len(loaded.Modes) != 1 || loaded.Modes[0].Dt != 0.25 {
		t.Errorf("mode overrides = %+v", loaded.Modes)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("system: dcdc\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.System != "dcdc" {
		t.Errorf("expected system override, got %q", cfg.System)
	}
	if cfg.Boundary != DefaultBoundary || cfg.OutDir != DefaultOutDir {
		t.Errorf("expected untouched defaults, got %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestBoundaryPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    symbolic.BoundaryPolicy
		wantErr bool
	}{
		{"", symbolic.Drop, false},
		{"drop", symbolic.Drop, false},
		{"snap", symbolic.Snap, false},
		{"bounce", symbolic.Drop, true},
	}
	for _, tt := range tests {
		cfg := &Config{Boundary: tt.in}
		got, err := cfg.BoundaryPolicy()
		if (err != nil) != tt.wantErr {
			t.Errorf("BoundaryPolicy(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("BoundaryPolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestApplyOverrides(t *testing.T) {
	sys, err := physics.Lookup("thermostat")
	if err != nil {
		t.Fatal(err)
	}

	cfg := &Config{Modes: []ModeConfig{{DX: []float64{0.25}, Dt: 0.5, Horizon: 4.0}}}
	if err := cfg.Apply(sys); err != nil {
		t.Fatal(err)
	}

	if sys.Modes[0].Disc.DX[0] != 0.25 || sys.Modes[0].Disc.Dt != 0.5 || sys.Modes[0].Horizon != 4.0 {
		t.Errorf("override not applied: %+v", sys.Modes[0].Disc)
	}
	// The second mode keeps its benchmark defaults.
	if sys.Modes[1].Disc.Dt != 0.25 {
		t.Errorf("unexpected change to second mode: %+v", sys.Modes[1].Disc)
	}

	over := &Config{Modes: make([]ModeConfig, 3)}
	if err := over.Apply(sys); err == nil {
		t.Error("expected error for too many overrides")
	}
}
