package cli

import (
	"fmt"

	"github.com/shotput/boxpacker/internal/boundary"
	"github.com/shotput/boxpacker/internal/catalog"
	"github.com/shotput/boxpacker/internal/export"
	"github.com/shotput/boxpacker/internal/model"
	"github.com/shotput/boxpacker/internal/packer"
)

// TemplateCmd groups reusable-shipment-template management: save a manifest
// plus a box profile and weight cap once, then re-run it later without
// re-specifying any of that.
type TemplateCmd struct {
	Save   *TemplateSaveCmd   `cmd:"" help:"Save an item manifest as a reusable template."`
	List   *TemplateListCmd   `cmd:"" help:"List saved templates."`
	Show   *TemplateShowCmd   `cmd:"" help:"Show one template's contents."`
	Remove *TemplateRemoveCmd `cmd:"" help:"Remove a saved template."`
	Run    *TemplateRunCmd    `cmd:"" help:"Pack using a saved template."`
}

type TemplateSaveCmd struct {
	Name        string  `required:"" help:"Template name."`
	Description string  `help:"Template description."`
	Items       string  `required:"" help:"Path to an item manifest (JSON, .csv, or .xlsx)."`
	Profile     string  `default:"Generic" help:"Box profile this template packs against."`
	MaxWeight   float64 `name:"max-weight" default:"31710" help:"Max weight per parcel, in grams."`
}

func (c *TemplateSaveCmd) Run() error {
	items, err := loadItemRequests(c.Items)
	if err != nil {
		return err
	}
	store, err := catalog.LoadDefaultTemplates()
	if err != nil {
		return fmt.Errorf("cli: load templates: %w", err)
	}
	tpl := model.NewShipmentTemplate(c.Name, c.Description, items, c.Profile, c.MaxWeight)
	store.Add(tpl)
	if err := catalog.SaveDefaultTemplates(store); err != nil {
		return fmt.Errorf("cli: save templates: %w", err)
	}
	fmt.Println("Saved template", tpl.ID, tpl.Name)
	return nil
}

type TemplateListCmd struct{}

func (c *TemplateListCmd) Run() error {
	store, err := catalog.LoadDefaultTemplates()
	if err != nil {
		return fmt.Errorf("cli: load templates: %w", err)
	}
	for _, t := range store.Templates {
		fmt.Printf("%s  %-24s %d item line(s), profile %s, max %.0f g\n", t.ID, t.Name, len(t.Items), t.BoxProfileName, t.MaxWeightGrams)
	}
	return nil
}

type TemplateShowCmd struct {
	ID string `arg:"" help:"Template ID."`
}

func (c *TemplateShowCmd) Run() error {
	tpl, err := findTemplate(c.ID)
	if err != nil {
		return err
	}
	fmt.Printf("%s — %s\n", tpl.Name, tpl.Description)
	fmt.Printf("Profile: %s, max weight: %.0f g, created %s, updated %s\n", tpl.BoxProfileName, tpl.MaxWeightGrams, tpl.CreatedAt, tpl.UpdatedAt)
	for _, it := range tpl.Items {
		fmt.Printf("  %-16s %.1f x %.1f x %.1f %s, %.0f %s, qty %d\n",
			it.Label, it.Width, it.Length, it.Height, it.DimensionUnit, it.Weight, it.MassUnit, it.Quantity)
	}
	return nil
}

type TemplateRemoveCmd struct {
	ID string `arg:"" help:"Template ID."`
}

func (c *TemplateRemoveCmd) Run() error {
	store, err := catalog.LoadDefaultTemplates()
	if err != nil {
		return fmt.Errorf("cli: load templates: %w", err)
	}
	if !store.Remove(c.ID) {
		return fmt.Errorf("cli: no template with ID %q", c.ID)
	}
	if err := catalog.SaveDefaultTemplates(store); err != nil {
		return fmt.Errorf("cli: save templates: %w", err)
	}
	fmt.Println("Removed template", c.ID)
	return nil
}

type TemplateRunCmd struct {
	ID          string `arg:"" help:"Template ID."`
	ManifestPDF string `name:"manifest-pdf" help:"If set, write a packing-slip PDF to this path."`
}

func (c *TemplateRunCmd) Run() error {
	tpl, err := findTemplate(c.ID)
	if err != nil {
		return err
	}

	boxRequests, err := resolveBoxRequests("", tpl.BoxProfileName)
	if err != nil {
		return err
	}
	input, err := boundary.BuildPackInput(tpl.Items, boxRequests, boundary.DefaultConverter{})
	if err != nil {
		return err
	}
	result, err := packer.Pack(input.Items, input.Boxes, tpl.MaxWeightGrams)
	if err != nil {
		return fmt.Errorf("cli: pack template %q: %w", tpl.Name, err)
	}

	printPackResult(result, tpl.MaxWeightGrams)

	if c.ManifestPDF != "" {
		if err := export.ExportManifestPDF(c.ManifestPDF, result, tpl.MaxWeightGrams); err != nil {
			return fmt.Errorf("cli: write manifest PDF: %w", err)
		}
		fmt.Println("\nWrote packing slip:", c.ManifestPDF)
	}
	return nil
}

func findTemplate(id string) (model.ShipmentTemplate, error) {
	store, err := catalog.LoadDefaultTemplates()
	if err != nil {
		return model.ShipmentTemplate{}, fmt.Errorf("cli: load templates: %w", err)
	}
	tpl := store.FindByID(id)
	if tpl == nil {
		return model.ShipmentTemplate{}, fmt.Errorf("cli: no template with ID %q", id)
	}
	return *tpl, nil
}
