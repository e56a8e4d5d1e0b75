package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if len(cfg.Maps.SearchPaths) == 0 {
		t.Error("expected default search paths")
	}

	if cfg.Generate.RoomsX != 3 || cfg.Generate.RoomsY != 3 {
		t.Errorf("expected 3x3 room grid, got %dx%d", cfg.Generate.RoomsX, cfg.Generate.RoomsY)
	}
	if cfg.Generate.RoomSize != 4 {
		t.Errorf("expected room size 4, got %g", cfg.Generate.RoomSize)
	}
	if cfg.Generate.Seed != 1 {
		t.Errorf("expected seed 1, got %d", cfg.Generate.Seed)
	}

	if cfg.Check.Strict {
		t.Error("expected strict to be false by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
maps:
  search_paths: ["/srv/maps"]

generate:
  rooms_x: 5
  rooms_y: 2
  room_size: 8
  jitter: 0.3
  min_ceiling: 2
  max_ceiling: 4
  seed: 99

check:
  strict: true
  json: true

logging:
  level: "debug"
  log_file: "wmttool.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if len(cfg.Maps.SearchPaths) != 1 || cfg.Maps.SearchPaths[0] != "/srv/maps" {
		t.Errorf("expected search paths [/srv/maps], got %v", cfg.Maps.SearchPaths)
	}

	if cfg.Generate.RoomsX != 5 || cfg.Generate.RoomsY != 2 {
		t.Errorf("expected 5x2 rooms, got %dx%d", cfg.Generate.RoomsX, cfg.Generate.RoomsY)
	}
	if cfg.Generate.RoomSize != 8 {
		t.Errorf("expected room size 8, got %g", cfg.Generate.RoomSize)
	}
	if cfg.Generate.Jitter != 0.3 {
		t.Errorf("expected jitter 0.3, got %g", cfg.Generate.Jitter)
	}
	if cfg.Generate.Seed != 99 {
		t.Errorf("expected seed 99, got %d", cfg.Generate.Seed)
	}

	if !cfg.Check.Strict {
		t.Error("expected strict to be true")
	}
	if !cfg.Check.JSON {
		t.Error("expected json to be true")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "wmttool.log" {
		t.Errorf("expected log file 'wmttool.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	if err := os.WriteFile(configPath, []byte("maps: [not a mapping"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML")
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.yaml")

	// Only override one section; the rest keeps defaults.
	yamlContent := "logging:\n  level: \"warn\"\n"
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level 'warn', got %s", cfg.Logging.Level)
	}
	if cfg.Generate.RoomsX != 3 {
		t.Errorf("expected default rooms_x 3, got %d", cfg.Generate.RoomsX)
	}
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Generate.Seed = 1234
	cfg.Check.Strict = true

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	if loaded.Generate.Seed != 1234 {
		t.Errorf("expected seed 1234 after reload, got %d", loaded.Generate.Seed)
	}
	if !loaded.Check.Strict {
		t.Error("expected strict to survive a save/load round trip")
	}
}

func TestResolveMap(t *testing.T) {
	tmpDir := t.TempDir()
	mapsDir := filepath.Join(tmpDir, "maps")
	if err := os.MkdirAll(mapsDir, 0755); err != nil {
		t.Fatalf("failed to create maps dir: %v", err)
	}

	mapPath := filepath.Join(mapsDir, "demo.wmt")
	if err := os.WriteFile(mapPath, []byte("p 0 0\n"), 0644); err != nil {
		t.Fatalf("failed to write map: %v", err)
	}

	cfg := Default()
	cfg.Maps.SearchPaths = []string{mapsDir}

	// Bare name resolves through the search path, extension optional.
	for _, name := range []string{"demo", "demo.wmt"} {
		got, err := cfg.ResolveMap(name)
		if err != nil {
			t.Fatalf("ResolveMap(%q) failed: %v", name, err)
		}
		if got != mapPath {
			t.Errorf("ResolveMap(%q) = %s, expected %s", name, got, mapPath)
		}
	}

	// Existing paths pass through untouched.
	if got, err := cfg.ResolveMap(mapPath); err != nil || got != mapPath {
		t.Errorf("ResolveMap(full path) = %s, %v", got, err)
	}

	if _, err := cfg.ResolveMap("missing"); err == nil {
		t.Error("expected error for unknown map name")
	}
}
