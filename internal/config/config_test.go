package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != 1 {
		t.Errorf("expected version 1, got %d", cfg.Version)
	}
	if cfg.Database.Path != DefaultDatabasePath {
		t.Errorf("expected default database path, got %s", cfg.Database.Path)
	}
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `version: 1
database:
  path: /tmp/links.db
list:
  limit: 25
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, loadedPath, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if loadedPath != path {
		t.Errorf("expected path %s, got %s", path, loadedPath)
	}
	if cfg.Database.Path != "/tmp/links.db" {
		t.Errorf("expected configured database path, got %s", cfg.Database.Path)
	}
	if cfg.List.Limit != 25 {
		t.Errorf("expected list limit 25, got %d", cfg.List.Limit)
	}
}

func TestLoadFromPathAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("list:\n  limit: 5\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, _, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("expected defaulted version 1, got %d", cfg.Version)
	}
	if cfg.Database.Path != DefaultDatabasePath {
		t.Errorf("expected defaulted database path, got %s", cfg.Database.Path)
	}
}

func TestLoadFromPathBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("version: [not valid\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, _, err := LoadFromPath(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Database.Path = filepath.Join(dir, "links.db")
	cfg.List.Limit = 10

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, _, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if loaded.Database.Path != cfg.Database.Path {
		t.Errorf("expected database path %s, got %s", cfg.Database.Path, loaded.Database.Path)
	}
	if loaded.List.Limit != 10 {
		t.Errorf("expected list limit 10, got %d", loaded.List.Limit)
	}
}

func TestFindConfigPathEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("version: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv(EnvConfigPath, path)
	if got := FindConfigPath(); got != path {
		t.Errorf("expected env override path %s, got %s", path, got)
	}
}
