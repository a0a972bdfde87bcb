package cli

import (
	"fmt"

	"github.com/shotput/boxpacker/internal/catalog"
	"github.com/shotput/boxpacker/internal/model"
)

// ProfileCmd groups box-profile inspection subcommands.
type ProfileCmd struct {
	List   *ProfileListCmd   `cmd:"" help:"List built-in and custom box profiles."`
	Show   *ProfileShowCmd   `cmd:"" help:"Show the boxes in one profile."`
	Import *ProfileImportCmd `cmd:"" help:"Import a custom box profile from a file."`
}

type ProfileListCmd struct{}

func (c *ProfileListCmd) Run() error {
	fmt.Println("Built-in profiles:")
	for _, name := range model.BoxProfileNames() {
		fmt.Println(" -", name)
	}

	custom, err := catalog.LoadCustomProfilesFromDefault()
	if err != nil {
		return fmt.Errorf("cli: load custom profiles: %w", err)
	}
	if len(custom) > 0 {
		fmt.Println("Custom profiles:")
		for _, p := range custom {
			fmt.Println(" -", p.Name)
		}
	}
	return nil
}

type ProfileShowCmd struct {
	Name string `arg:"" help:"Profile name."`
}

func (c *ProfileShowCmd) Run() error {
	profile, err := findBoxProfile(c.Name)
	if err != nil {
		return err
	}
	fmt.Printf("%s — %s (default max weight %.0f g)\n", profile.Name, profile.Description, profile.DefaultMaxWeightGrams)
	for _, b := range profile.Boxes {
		fmt.Printf("  %-28s %.1f x %.1f x %.1f cm, tare %.0f g\n", b.Name, b.Interior[0], b.Interior[1], b.Interior[2], b.TareWeight)
	}
	return nil
}

type ProfileImportCmd struct {
	Path string `arg:"" help:"Source box profile JSON path."`
}

func (c *ProfileImportCmd) Run() error {
	existing, err := catalog.LoadCustomProfilesFromDefault()
	if err != nil {
		return fmt.Errorf("cli: load custom profiles: %w", err)
	}
	merged, added, err := catalog.ImportProfileInto(c.Path, existing)
	if err != nil {
		return fmt.Errorf("cli: import profile: %w", err)
	}
	if !added {
		fmt.Println("Profile already present, skipped")
		return nil
	}
	if err := catalog.SaveCustomProfilesToDefault(merged); err != nil {
		return fmt.Errorf("cli: save custom profiles: %w", err)
	}
	fmt.Println("Imported profile", merged[len(merged)-1].Name)
	return nil
}

// InventoryCmd groups saved box/weight-cap preset management.
type InventoryCmd struct {
	List     *InventoryListCmd     `cmd:"" help:"List saved box and weight-cap presets."`
	AddBox   *InventoryAddBoxCmd   `cmd:"" help:"Add a box preset to the saved inventory." name:"add-box"`
	RemoveBox *InventoryRemoveBoxCmd `cmd:"" help:"Remove a box preset by ID." name:"remove-box"`
	Export   *InventoryExportCmd   `cmd:"" help:"Export the saved inventory to a file."`
	Import   *InventoryImportCmd   `cmd:"" help:"Merge a saved inventory file into the local one."`
}

type InventoryListCmd struct{}

func (c *InventoryListCmd) Run() error {
	inv, path, err := catalog.LoadOrCreateInventory()
	if err != nil {
		return fmt.Errorf("cli: load inventory (%s): %w", path, err)
	}
	fmt.Println("Boxes:")
	for _, b := range inv.Boxes {
		fmt.Printf("  %s  %-24s %.1f x %.1f x %.1f cm, tare %.0f g\n", b.ID, b.Name, b.Width, b.Length, b.Height, b.TareWeight)
	}
	fmt.Println("Weight caps:")
	for _, wc := range inv.WeightCaps {
		fmt.Printf("  %s  %-28s %.0f g — %s\n", wc.ID, wc.Name, wc.MaxWeightGrams, wc.Description)
	}
	return nil
}

type InventoryAddBoxCmd struct {
	Name       string  `required:"" help:"Box name."`
	Width      float64 `required:"" help:"Width in cm."`
	Length     float64 `required:"" help:"Length in cm."`
	Height     float64 `required:"" help:"Height in cm."`
	TareWeight float64 `help:"Tare weight in grams." name:"tare-weight"`
	Carrier    string  `help:"Carrier name, if any."`
}

func (c *InventoryAddBoxCmd) Run() error {
	inv, path, err := catalog.LoadOrCreateInventory()
	if err != nil {
		return fmt.Errorf("cli: load inventory: %w", err)
	}
	preset := model.NewBoxPreset(c.Name, c.Width, c.Length, c.Height, c.TareWeight, c.Carrier)
	inv.Boxes = append(inv.Boxes, preset)
	if err := catalog.SaveInventory(path, inv); err != nil {
		return fmt.Errorf("cli: save inventory: %w", err)
	}
	fmt.Println("Added box preset", preset.ID, preset.Name)
	return nil
}

type InventoryRemoveBoxCmd struct {
	ID string `arg:"" help:"Box preset ID."`
}

func (c *InventoryRemoveBoxCmd) Run() error {
	inv, path, err := catalog.LoadOrCreateInventory()
	if err != nil {
		return fmt.Errorf("cli: load inventory: %w", err)
	}
	kept := inv.Boxes[:0]
	removed := false
	for _, b := range inv.Boxes {
		if b.ID == c.ID {
			removed = true
			continue
		}
		kept = append(kept, b)
	}
	inv.Boxes = kept
	if !removed {
		return fmt.Errorf("cli: no box preset with ID %q", c.ID)
	}
	if err := catalog.SaveInventory(path, inv); err != nil {
		return fmt.Errorf("cli: save inventory: %w", err)
	}
	fmt.Println("Removed box preset", c.ID)
	return nil
}

type InventoryExportCmd struct {
	Path string `arg:"" help:"Destination JSON path."`
}

func (c *InventoryExportCmd) Run() error {
	inv, _, err := catalog.LoadOrCreateInventory()
	if err != nil {
		return fmt.Errorf("cli: load inventory: %w", err)
	}
	if err := catalog.ExportInventory(c.Path, inv); err != nil {
		return fmt.Errorf("cli: export inventory: %w", err)
	}
	fmt.Println("Exported inventory to", c.Path)
	return nil
}

type InventoryImportCmd struct {
	Path string `arg:"" help:"Source JSON path."`
}

func (c *InventoryImportCmd) Run() error {
	existing, path, err := catalog.LoadOrCreateInventory()
	if err != nil {
		return fmt.Errorf("cli: load inventory: %w", err)
	}
	merged, err := catalog.ImportInventory(c.Path, existing)
	if err != nil {
		return fmt.Errorf("cli: import inventory: %w", err)
	}
	if err := catalog.SaveInventory(path, merged); err != nil {
		return fmt.Errorf("cli: save inventory: %w", err)
	}
	fmt.Printf("Merged inventory: %d box(es), %d weight cap(s)\n", len(merged.Boxes), len(merged.WeightCaps))
	return nil
}

// ConfigCmd groups application-default inspection and changes.
type ConfigCmd struct {
	Show *ConfigShowCmd `cmd:"" help:"Show current application defaults."`
	Set  *ConfigSetCmd  `cmd:"" help:"Change an application default."`
}

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run() error {
	cfg, err := catalog.LoadAppConfig(catalog.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("cli: load config: %w", err)
	}
	fmt.Printf("Default max weight:   %.0f g\n", cfg.DefaultMaxWeightGrams)
	fmt.Printf("Default dim unit:     %s\n", cfg.DefaultDimensionUnit)
	fmt.Printf("Default mass unit:    %s\n", cfg.DefaultMassUnit)
	fmt.Printf("Default box profile:  %s\n", cfg.DefaultBoxProfile)
	fmt.Printf("Theme:                %s\n", cfg.Theme)
	return nil
}

type ConfigSetCmd struct {
	MaxWeight    float64 `name:"max-weight" help:"Set the default max weight per parcel, in grams (0 to leave unchanged)."`
	DimensionUnit string `name:"dimension-unit" help:"Set the default dimension unit."`
	MassUnit     string  `name:"mass-unit" help:"Set the default mass unit."`
	BoxProfile   string  `name:"box-profile" help:"Set the default box profile name."`
	Theme        string  `help:"Set the UI theme preference."`
}

func (c *ConfigSetCmd) Run() error {
	path := catalog.DefaultConfigPath()
	cfg, err := catalog.LoadAppConfig(path)
	if err != nil {
		return fmt.Errorf("cli: load config: %w", err)
	}
	if c.MaxWeight > 0 {
		cfg.DefaultMaxWeightGrams = c.MaxWeight
	}
	if c.DimensionUnit != "" {
		cfg.DefaultDimensionUnit = c.DimensionUnit
	}
	if c.MassUnit != "" {
		cfg.DefaultMassUnit = c.MassUnit
	}
	if c.BoxProfile != "" {
		cfg.DefaultBoxProfile = c.BoxProfile
	}
	if c.Theme != "" {
		cfg.Theme = c.Theme
	}
	if err := catalog.SaveAppConfig(path, cfg); err != nil {
		return fmt.Errorf("cli: save config: %w", err)
	}
	fmt.Println("Saved config to", path)
	return nil
}

// BackupCmd groups full-data export/import.
type BackupCmd struct {
	Export *BackupExportCmd `cmd:"" help:"Export config, profiles, and templates to one file."`
	Import *BackupImportCmd `cmd:"" help:"Import config, profiles, and templates from a backup file."`
}

type BackupExportCmd struct {
	Path string `arg:"" help:"Destination JSON path."`
}

func (c *BackupExportCmd) Run() error {
	cfg, err := catalog.LoadAppConfig(catalog.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("cli: load config: %w", err)
	}
	profiles, err := catalog.LoadCustomProfilesFromDefault()
	if err != nil {
		return fmt.Errorf("cli: load custom profiles: %w", err)
	}
	templates, err := catalog.LoadDefaultTemplates()
	if err != nil {
		return fmt.Errorf("cli: load templates: %w", err)
	}
	if err := catalog.ExportAllData(c.Path, cfg, profiles, templates); err != nil {
		return fmt.Errorf("cli: export backup: %w", err)
	}
	fmt.Println("Exported backup to", c.Path)
	return nil
}

type BackupImportCmd struct {
	Path string `arg:"" help:"Source backup JSON path."`
}

func (c *BackupImportCmd) Run() error {
	backup, err := catalog.ImportAllData(c.Path)
	if err != nil {
		return err
	}
	if err := catalog.SaveAppConfig(catalog.DefaultConfigPath(), backup.Config); err != nil {
		return fmt.Errorf("cli: save config: %w", err)
	}
	if err := catalog.SaveCustomProfilesToDefault(backup.Profiles); err != nil {
		return fmt.Errorf("cli: save custom profiles: %w", err)
	}
	if err := catalog.SaveDefaultTemplates(backup.Templates); err != nil {
		return fmt.Errorf("cli: save templates: %w", err)
	}
	fmt.Printf("Restored backup (version %s, created %s): %d profile(s), %d template(s)\n",
		backup.Version, backup.CreatedAt, len(backup.Profiles), len(backup.Templates.Templates))
	return nil
}
