package cli

import (
	"fmt"

	"github.com/shotput/boxpacker/internal/catalog"
	"github.com/shotput/boxpacker/internal/model"
)

// boxFlags is embedded by the single-box diagnostic commands (space, fit,
// estimate): a box is named either by profile/inventory lookup or given
// inline as raw dimensions, never both.
type boxFlags struct {
	BoxName    string  `help:"Name of a box in --profile, or in the saved inventory if --profile has no box by that name." name:"box-name"`
	Profile    string  `help:"Box profile to look the named box up in." default:"Generic"`
	BoxWidth   float64 `help:"Inline box width in cm (with --box-length/--box-height), instead of --box-name." name:"box-width"`
	BoxLength  float64 `help:"Inline box length in cm." name:"box-length"`
	BoxHeight  float64 `help:"Inline box height in cm." name:"box-height"`
	BoxTare    float64 `help:"Inline box tare weight in grams." name:"box-tare"`
}

func (f boxFlags) resolve() (model.Box, error) {
	if f.BoxName == "" {
		if f.BoxWidth <= 0 || f.BoxLength <= 0 || f.BoxHeight <= 0 {
			return model.Box{}, fmt.Errorf("cli: specify either --box-name or all of --box-width/--box-length/--box-height")
		}
		return model.NewBox("inline", f.BoxWidth, f.BoxLength, f.BoxHeight, f.BoxTare), nil
	}

	profile, err := findBoxProfile(f.Profile)
	if err != nil {
		return model.Box{}, err
	}
	for _, b := range profile.Boxes {
		if b.Name == f.BoxName {
			return b, nil
		}
	}
	inv, _, invErr := catalog.LoadOrCreateInventory()
	if invErr == nil {
		if preset := inv.FindBoxByName(f.BoxName); preset != nil {
			return preset.ToBox(), nil
		}
	}
	return model.Box{}, fmt.Errorf("cli: no box named %q in profile %q or the saved inventory", f.BoxName, profile.Name)
}
