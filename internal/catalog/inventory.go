package catalog

import (
	"os"
	"path/filepath"

	"github.com/shotput/boxpacker/internal/model"
)

// DefaultInventoryPath returns ~/.boxpacker/inventory.json.
func DefaultInventoryPath() (string, error) {
	return filepath.Join(DefaultConfigDir(), "inventory.json"), nil
}

// SaveInventory writes inv to path as indented JSON.
func SaveInventory(path string, inv model.Inventory) error {
	return writeJSON(path, inv)
}

// LoadInventory reads the inventory from path. If the file doesn't
// exist, it creates one populated with model.DefaultInventory and
// returns that. Box presets that fail validBoxPreset — a hand-edited
// inventory file is the usual way one gets in — are dropped rather than
// handed to the packer: these feed model.Fits and PackBox directly, and a
// non-positive dimension there isn't just a useless preset, it's a box
// that can never hold anything.
func LoadInventory(path string) (model.Inventory, error) {
	var inv model.Inventory
	if err := readJSON(path, &inv); err != nil {
		if os.IsNotExist(err) {
			inv := model.DefaultInventory()
			if saveErr := SaveInventory(path, inv); saveErr != nil {
				return inv, saveErr
			}
			return inv, nil
		}
		return model.Inventory{}, err
	}
	inv.Boxes = filterValidBoxPresets(inv.Boxes)
	return inv, nil
}

// LoadOrCreateInventory loads the inventory from the default path,
// returning the path it used.
func LoadOrCreateInventory() (model.Inventory, string, error) {
	path, err := DefaultInventoryPath()
	if err != nil {
		return model.DefaultInventory(), "", err
	}
	inv, err := LoadInventory(path)
	return inv, path, err
}

// ExportInventory writes inv to a caller-chosen path for sharing.
func ExportInventory(path string, inv model.Inventory) error {
	return SaveInventory(path, inv)
}

// ImportInventory reads an inventory from path and merges it into
// existing, skipping any box or weight-cap preset whose ID is already
// present, and — same reasoning as LoadInventory — any imported box
// preset that fails validBoxPreset.
func ImportInventory(path string, existing model.Inventory) (model.Inventory, error) {
	var imported model.Inventory
	if err := readJSON(path, &imported); err != nil {
		return existing, err
	}

	boxIDs := make(map[string]bool, len(existing.Boxes))
	for _, b := range existing.Boxes {
		boxIDs[b.ID] = true
	}
	capIDs := make(map[string]bool, len(existing.WeightCaps))
	for _, c := range existing.WeightCaps {
		capIDs[c.ID] = true
	}

	for _, b := range filterValidBoxPresets(imported.Boxes) {
		if !boxIDs[b.ID] {
			existing.Boxes = append(existing.Boxes, b)
			boxIDs[b.ID] = true
		}
	}
	for _, c := range imported.WeightCaps {
		if !capIDs[c.ID] {
			existing.WeightCaps = append(existing.WeightCaps, c)
			capIDs[c.ID] = true
		}
	}

	return existing, nil
}

// validBoxPreset reports whether a box preset has physically sensible
// dimensions and weight: every side positive, tare weight non-negative.
func validBoxPreset(b model.BoxPreset) bool {
	return b.Width > 0 && b.Length > 0 && b.Height > 0 && b.TareWeight >= 0
}

// filterValidBoxPresets drops any preset failing validBoxPreset, keeping
// the rest in their original order.
func filterValidBoxPresets(presets []model.BoxPreset) []model.BoxPreset {
	kept := presets[:0]
	for _, b := range presets {
		if validBoxPreset(b) {
			kept = append(kept, b)
		}
	}
	return kept
}
