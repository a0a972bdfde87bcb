package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shotput/boxpacker/internal/model"
)

func TestSaveAndLoadInventory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inventory.json")

	inv := model.DefaultInventory()
	if err := SaveInventory(path, inv); err != nil {
		t.Fatalf("SaveInventory failed: %v", err)
	}

	loaded, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}
	if len(loaded.Boxes) != len(inv.Boxes) {
		t.Errorf("expected %d boxes, got %d", len(inv.Boxes), len(loaded.Boxes))
	}
}

func TestLoadInventoryMissingFileCreatesDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inventory.json")

	loaded, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}
	if len(loaded.Boxes) == 0 {
		t.Error("expected default inventory to have boxes")
	}

	if _, statErr := os.Stat(path); statErr != nil {
		t.Fatalf("expected default inventory file to be created: %v", statErr)
	}
}

func TestLoadInventoryDropsInvalidBoxPresets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inventory.json")

	inv := model.Inventory{
		Boxes: []model.BoxPreset{
			model.NewBoxPreset("Good", 10, 10, 10, 5, ""),
			model.NewBoxPreset("ZeroWidth", 0, 10, 10, 5, ""),
			model.NewBoxPreset("NegativeTare", 10, 10, 10, -1, ""),
		},
	}
	if err := SaveInventory(path, inv); err != nil {
		t.Fatalf("SaveInventory failed: %v", err)
	}

	loaded, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}
	if len(loaded.Boxes) != 1 || loaded.Boxes[0].Name != "Good" {
		t.Errorf("expected only the valid box preset to survive, got %+v", loaded.Boxes)
	}
}

func TestImportInventorySkipsDuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	importPath := filepath.Join(dir, "import.json")

	existing := model.DefaultInventory()
	shared := existing.Boxes[0]

	toImport := model.Inventory{Boxes: []model.BoxPreset{shared, model.NewBoxPreset("New Box", 1, 2, 3, 4, "Other")}}
	if err := SaveInventory(importPath, toImport); err != nil {
		t.Fatalf("SaveInventory failed: %v", err)
	}

	merged, err := ImportInventory(importPath, existing)
	if err != nil {
		t.Fatalf("ImportInventory failed: %v", err)
	}

	count := 0
	for _, b := range merged.Boxes {
		if b.ID == shared.ID {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected shared box to appear exactly once, got %d", count)
	}
}
