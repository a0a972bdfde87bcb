package catalog

import (
	"path/filepath"
	"testing"

	"github.com/shotput/boxpacker/internal/model"
)

func TestExportAndImportAllData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")

	cfg := model.DefaultAppConfig()
	cfg.Theme = "dark"
	profiles := []model.BoxProfile{{Name: "Custom"}}
	templates := model.NewTemplateStore()
	templates.Add(model.NewShipmentTemplate("Order", "", nil, "Generic", model.DefaultMaxWeightGrams))

	if err := ExportAllData(path, cfg, profiles, templates); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	imported, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if imported.Version == "" {
		t.Error("expected a non-empty version")
	}
	if imported.Config.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", imported.Config.Theme)
	}
	if len(imported.Profiles) != 1 {
		t.Errorf("expected 1 profile, got %d", len(imported.Profiles))
	}
	if len(imported.Templates.Templates) != 1 {
		t.Errorf("expected 1 template, got %d", len(imported.Templates.Templates))
	}
}

func TestImportAllDataRejectsMissingVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := SaveAppConfig(path, model.DefaultAppConfig()); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	if _, err := ImportAllData(path); err == nil {
		t.Error("expected an error for a backup file with no version field")
	}
}
