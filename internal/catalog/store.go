package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// writeJSON marshals v as indented JSON and writes it to path, creating any
// missing parent directories first. The AppConfig, custom BoxProfile,
// Inventory, and TemplateStore saves all go through it, sharing one copy
// of the MkdirAll-then-MarshalIndent-then-WriteFile sequence.
// ExportAllData (BackupData) and ExportProfile write their files directly.
func writeJSON(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// readJSON reads path and unmarshals it into v, returning the raw
// os.ReadFile error unwrapped so callers can tell a missing file apart
// from a corrupt one with errors.Is(err, os.ErrNotExist) — what "missing"
// should default to differs per store (a zero value, built-in defaults,
// an empty slice), so that decision stays with the caller.
func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
