package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Engine.BaseSpeed != 0.05 {
		t.Errorf("default BaseSpeed = %v, want 0.05", cfg.Engine.BaseSpeed)
	}
	if !cfg.Engine.CollisionEnabled {
		t.Error("collision should be enabled by default")
	}
	if !cfg.Engine.GravityEnabled {
		t.Error("gravity should be enabled by default")
	}
	if cfg.World.GridSize != 1.0 {
		t.Errorf("default GridSize = %v, want 1.0", cfg.World.GridSize)
	}
	if cfg.World.BuildingFootprint != 0.7 {
		t.Errorf("default BuildingFootprint = %v, want 0.7", cfg.World.BuildingFootprint)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadFromFile_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
engine:
  base_speed: 0.1
  collision_enabled: false
world:
  half_extent_cells: 25
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if cfg.Engine.BaseSpeed != 0.1 {
		t.Errorf("BaseSpeed = %v, want 0.1 from file", cfg.Engine.BaseSpeed)
	}
	if cfg.Engine.CollisionEnabled {
		t.Error("CollisionEnabled should be false from file")
	}
	if cfg.World.HalfExtentCells != 25 {
		t.Errorf("HalfExtentCells = %v, want 25 from file", cfg.World.HalfExtentCells)
	}
	// Untouched values keep defaults
	if cfg.Engine.EyeHeight != 1.6 {
		t.Errorf("EyeHeight = %v, want default 1.6", cfg.Engine.EyeHeight)
	}
	if cfg.Input.MouseSensitivity != 0.002 {
		t.Errorf("MouseSensitivity = %v, want default 0.002", cfg.Input.MouseSensitivity)
	}
}

func TestLoadFromFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("engine: [not a map"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := Default()
	cfg.Engine.BaseSpeed = 0.08
	cfg.World.HalfExtentCells = 10
	cfg.Logging.Level = "debug"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if loaded.Engine.BaseSpeed != 0.08 {
		t.Errorf("BaseSpeed = %v, want 0.08", loaded.Engine.BaseSpeed)
	}
	if loaded.World.HalfExtentCells != 10 {
		t.Errorf("HalfExtentCells = %v, want 10", loaded.World.HalfExtentCells)
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", loaded.Logging.Level)
	}
}
