package catalog

import (
	"path/filepath"
	"testing"

	"github.com/shotput/boxpacker/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.Theme = "dark"
	cfg.DefaultBoxProfile = "UPS Standard"
	cfg.RecentManifests = []string{"/tmp/a.csv", "/tmp/b.csv"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", loaded.Theme)
	}
	if loaded.DefaultBoxProfile != "UPS Standard" {
		t.Errorf("expected DefaultBoxProfile=UPS Standard, got %s", loaded.DefaultBoxProfile)
	}
	if len(loaded.RecentManifests) != 2 {
		t.Errorf("expected 2 recent manifests, got %d", len(loaded.RecentManifests))
	}
}

func TestLoadAppConfigMissingFileReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "does-not-exist.json")

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if loaded.DefaultMaxWeightGrams != model.DefaultMaxWeightGrams {
		t.Errorf("expected default max weight, got %f", loaded.DefaultMaxWeightGrams)
	}
}

func TestLoadAppConfigSanitizesNonPositiveMaxWeight(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultMaxWeightGrams = 0
	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if loaded.DefaultMaxWeightGrams != model.DefaultMaxWeightGrams {
		t.Errorf("expected non-positive max weight to fall back to default, got %f", loaded.DefaultMaxWeightGrams)
	}
}
