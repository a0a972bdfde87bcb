package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shotput/boxpacker/internal/model"
)

// BackupData is the top-level shape for a full-data export/import: the
// app config plus the box profile and template stores, versioned so a
// future format change can detect and migrate older backups.
type BackupData struct {
	Version   string              `json:"version"`
	CreatedAt string              `json:"created_at"`
	Config    model.AppConfig     `json:"config"`
	Profiles  []model.BoxProfile  `json:"profiles"`
	Templates model.TemplateStore `json:"templates"`
}

const backupFormatVersion = "1.0.0"

// ExportAllData writes config, profiles, and templates to a single JSON
// file at exportPath.
func ExportAllData(exportPath string, config model.AppConfig, profiles []model.BoxProfile, templates model.TemplateStore) error {
	backup := BackupData{
		Version:   backupFormatVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
		Profiles:  profiles,
		Templates: templates,
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("catalog: marshal backup data: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(exportPath), 0755); err != nil {
		return fmt.Errorf("catalog: create export directory: %w", err)
	}
	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return fmt.Errorf("catalog: write backup file: %w", err)
	}
	return nil
}

// ImportAllData reads a backup JSON file. The caller is responsible for
// applying the contained config, profiles, and templates.
func ImportAllData(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("catalog: read backup file: %w", err)
	}

	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("catalog: parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("catalog: invalid backup file: missing version field")
	}
	if backup.Config.RecentManifests == nil {
		backup.Config.RecentManifests = []string{}
	}
	return backup, nil
}
