package catalog

import (
	"path/filepath"
	"testing"

	"github.com/shotput/boxpacker/internal/model"
)

func TestSaveAndLoadCustomProfiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.json")

	profiles := []model.BoxProfile{
		{Name: "Custom", Boxes: []model.Box{model.NewBox("A", 10, 10, 10, 50)}, DefaultMaxWeightGrams: 9000, IsBuiltIn: true},
	}

	if err := SaveCustomProfiles(path, profiles); err != nil {
		t.Fatalf("SaveCustomProfiles failed: %v", err)
	}

	loaded, err := LoadCustomProfiles(path)
	if err != nil {
		t.Fatalf("LoadCustomProfiles failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(loaded))
	}
	if loaded[0].IsBuiltIn {
		t.Error("loaded custom profiles should never be marked built-in")
	}
}

func TestLoadCustomProfilesMissingFileReturnsEmpty(t *testing.T) {
	dir := t.TempDir()
	loaded, err := LoadCustomProfiles(filepath.Join(dir, "missing.json"))
	if err != nil {
		t.Fatalf("LoadCustomProfiles failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty slice, got %d entries", len(loaded))
	}
}

func TestExportImportProfileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shared.json")

	profile := model.BoxProfile{Name: "Shared", IsBuiltIn: true}
	if err := ExportProfile(path, profile); err != nil {
		t.Fatalf("ExportProfile failed: %v", err)
	}

	imported, err := ImportProfile(path)
	if err != nil {
		t.Fatalf("ImportProfile failed: %v", err)
	}
	if imported.IsBuiltIn {
		t.Error("imported profile should never be marked built-in")
	}
	if imported.Name != "Shared" {
		t.Errorf("expected Name=Shared, got %s", imported.Name)
	}
}

func TestImportProfileSanitizesNonPositiveMaxWeight(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zero-weight.json")

	if err := ExportProfile(path, model.BoxProfile{Name: "ZeroWeight", DefaultMaxWeightGrams: 0}); err != nil {
		t.Fatalf("ExportProfile failed: %v", err)
	}

	imported, err := ImportProfile(path)
	if err != nil {
		t.Fatalf("ImportProfile failed: %v", err)
	}
	if imported.DefaultMaxWeightGrams != model.DefaultMaxWeightGrams {
		t.Errorf("expected non-positive max weight to fall back to default, got %f", imported.DefaultMaxWeightGrams)
	}
}

func TestImportProfileIntoSkipsDuplicateNames(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dup.json")

	existing := []model.BoxProfile{{Name: "Shared", DefaultMaxWeightGrams: 1000}}
	if err := ExportProfile(path, model.BoxProfile{Name: "Shared", DefaultMaxWeightGrams: 2000}); err != nil {
		t.Fatalf("ExportProfile failed: %v", err)
	}

	merged, added, err := ImportProfileInto(path, existing)
	if err != nil {
		t.Fatalf("ImportProfileInto failed: %v", err)
	}
	if added {
		t.Error("expected duplicate-named profile to be skipped")
	}
	if len(merged) != 1 {
		t.Errorf("expected existing slice to be unchanged, got %d entries", len(merged))
	}
}

func TestImportProfileIntoAddsNewName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "new.json")

	existing := []model.BoxProfile{{Name: "Shared"}}
	if err := ExportProfile(path, model.BoxProfile{Name: "Different"}); err != nil {
		t.Fatalf("ExportProfile failed: %v", err)
	}

	merged, added, err := ImportProfileInto(path, existing)
	if err != nil {
		t.Fatalf("ImportProfileInto failed: %v", err)
	}
	if !added {
		t.Error("expected new-named profile to be added")
	}
	if len(merged) != 2 {
		t.Errorf("expected 2 entries, got %d", len(merged))
	}
}

func TestImportProfileRejectsUnnamed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unnamed.json")

	if err := ExportProfile(path, model.BoxProfile{}); err != nil {
		t.Fatalf("ExportProfile failed: %v", err)
	}
	if _, err := ImportProfile(path); err == nil {
		t.Error("expected an error importing a profile with no name")
	}
}
