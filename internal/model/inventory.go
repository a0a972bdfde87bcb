package model

import "github.com/google/uuid"

// WeightCapPreset is a reusable per-parcel weight cap, e.g. a carrier's
// published weight limit.
type WeightCapPreset struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	MaxWeightGrams float64 `json:"max_weight_grams"`
	Description    string  `json:"description"`
}

// NewWeightCapPreset creates a new WeightCapPreset with a generated ID.
func NewWeightCapPreset(name string, maxWeightGrams float64, description string) WeightCapPreset {
	return WeightCapPreset{
		ID:             uuid.New().String()[:8],
		Name:           name,
		MaxWeightGrams: maxWeightGrams,
		Description:    description,
	}
}

// BoxPreset is a reusable candidate box definition, stood in a local
// inventory rather than queried from a box catalog database — this is
// the CLI-local substitute; see internal/catalog.
type BoxPreset struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Width      float64 `json:"width"`
	Length     float64 `json:"length"`
	Height     float64 `json:"height"`
	TareWeight float64 `json:"tare_weight"`
	Carrier    string  `json:"carrier"`
}

// NewBoxPreset creates a new BoxPreset with a generated ID.
func NewBoxPreset(name string, w, l, h, tareWeight float64, carrier string) BoxPreset {
	return BoxPreset{
		ID:         uuid.New().String()[:8],
		Name:       name,
		Width:      w,
		Length:     l,
		Height:     h,
		TareWeight: tareWeight,
		Carrier:    carrier,
	}
}

// ToBox converts a BoxPreset into a Box.
func (bp BoxPreset) ToBox() Box {
	return NewBox(bp.Name, bp.Width, bp.Length, bp.Height, bp.TareWeight)
}

// Inventory holds the user's saved box presets and weight-cap presets.
type Inventory struct {
	Boxes      []BoxPreset       `json:"boxes"`
	WeightCaps []WeightCapPreset `json:"weight_caps"`
}

// DefaultInventory returns an inventory populated with common defaults.
func DefaultInventory() Inventory {
	return Inventory{
		WeightCaps: []WeightCapPreset{
			NewWeightCapPreset("USPS 70lb limit", 31751, "USPS flat-rate and most parcel services"),
			NewWeightCapPreset("UPS/FedEx 150lb limit", 68039, "UPS and FedEx ground maximum"),
			NewWeightCapPreset("Lightweight 20lb", 9072, "Small-parcel carriers and envelopes"),
		},
		Boxes: []BoxPreset{
			NewBoxPreset("Small Box", 20, 20, 20, 200, ""),
			NewBoxPreset("Medium Box", 35, 35, 35, 400, ""),
			NewBoxPreset("Large Box", 50, 50, 50, 600, ""),
			NewBoxPreset("USPS Small Flat Rate", 21.9, 13.7, 5.1, 0, "USPS"),
			NewBoxPreset("USPS Medium Flat Rate", 28.6, 27.3, 6.4, 0, "USPS"),
		},
	}
}

// FindBoxByID returns a pointer to the box preset with the given ID, or nil.
func (inv *Inventory) FindBoxByID(id string) *BoxPreset {
	for i := range inv.Boxes {
		if inv.Boxes[i].ID == id {
			return &inv.Boxes[i]
		}
	}
	return nil
}

// FindBoxByName returns a pointer to the first box preset with the given
// name, or nil.
func (inv *Inventory) FindBoxByName(name string) *BoxPreset {
	for i := range inv.Boxes {
		if inv.Boxes[i].Name == name {
			return &inv.Boxes[i]
		}
	}
	return nil
}

// BoxNames returns the names of all box presets, for CLI listing.
func (inv *Inventory) BoxNames() []string {
	names := make([]string, len(inv.Boxes))
	for i, b := range inv.Boxes {
		names[i] = b.Name
	}
	return names
}

// FindWeightCapByName returns a pointer to the first weight-cap preset
// with the given name, or nil.
func (inv *Inventory) FindWeightCapByName(name string) *WeightCapPreset {
	for i := range inv.WeightCaps {
		if inv.WeightCaps[i].Name == name {
			return &inv.WeightCaps[i]
		}
	}
	return nil
}
