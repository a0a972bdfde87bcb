package cli

import (
	"fmt"

	"github.com/shotput/boxpacker/internal/boundary"
	"github.com/shotput/boxpacker/internal/export"
	"github.com/shotput/boxpacker/internal/model"
	"github.com/shotput/boxpacker/internal/packer"
)

// PackCmd runs the full packing pipeline against an item manifest (E1).
type PackCmd struct {
	Items      string  `help:"Path to an item manifest: JSON ({\"items\":[...]}), .csv, or .xlsx." required:"" short:"i"`
	BoxesFile  string  `help:"Path to a JSON box manifest ({\"boxes\":[...]}), overrides --profile." name:"boxes-file"`
	Profile    string  `help:"Box profile to draw candidate boxes from." default:"Generic"`
	MaxWeight  float64 `help:"Max weight per parcel in grams (box tare + items)." name:"max-weight" default:"31710"`
	ManifestPDF string `help:"If set, write a packing-slip PDF to this path." name:"manifest-pdf"`
	LabelsPDF   string `help:"If set, write a QR-coded parcel label sheet to this path." name:"labels-pdf"`
}

func (c *PackCmd) Run() error {
	itemRequests, err := loadItemRequests(c.Items)
	if err != nil {
		return err
	}
	boxRequests, err := resolveBoxRequests(c.BoxesFile, c.Profile)
	if err != nil {
		return err
	}

	input, err := boundary.BuildPackInput(itemRequests, boxRequests, boundary.DefaultConverter{})
	if err != nil {
		return err
	}

	result, err := packer.Pack(input.Items, input.Boxes, c.MaxWeight)
	if err != nil {
		return fmt.Errorf("cli: pack: %w", err)
	}

	printPackResult(result, c.MaxWeight)

	if c.ManifestPDF != "" {
		if err := export.ExportManifestPDF(c.ManifestPDF, result, c.MaxWeight); err != nil {
			return fmt.Errorf("cli: write manifest PDF: %w", err)
		}
		fmt.Println("\nWrote packing slip:", c.ManifestPDF)
	}
	if c.LabelsPDF != "" {
		if err := export.ExportParcelLabels(c.LabelsPDF, result); err != nil {
			return fmt.Errorf("cli: write label sheet: %w", err)
		}
		fmt.Println("Wrote parcel labels:", c.LabelsPDF)
	}

	return nil
}

// parseDimsTriple is a small shared helper for the single-item diagnostic
// commands (space, fit, estimate), which all take a raw w/l/h triple
// rather than a full ItemRequest.
func parseDimsTriple(w, l, h float64) model.Dimensions {
	return model.NewDimensions(w, l, h)
}
