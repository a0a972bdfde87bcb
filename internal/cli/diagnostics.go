package cli

import (
	"fmt"

	"github.com/shotput/boxpacker/internal/model"
	"github.com/shotput/boxpacker/internal/packer"
)

// SpaceCmd exposes E2: the residual space left in a box after one item is
// placed in it.
type SpaceCmd struct {
	Width  float64 `help:"Item width in cm." required:""`
	Length float64 `help:"Item length in cm." required:""`
	Height float64 `help:"Item height in cm." required:""`
	boxFlags
}

func (c *SpaceCmd) Run() error {
	box, err := c.resolve()
	if err != nil {
		return err
	}

	item := parseDimsTriple(c.Width, c.Length, c.Height)
	residuals, volume, err := packer.SpaceAfterPacking(item, box)
	if err != nil {
		return fmt.Errorf("cli: space: %w", err)
	}

	fmt.Printf("Box %s (%.2f x %.2f x %.2f cm, volume %.2f cm^3)\n", box.Name, box.Interior[0], box.Interior[1], box.Interior[2], box.Volume())
	fmt.Printf("Residual blocks: %d, total remaining volume: %.2f cm^3\n", len(residuals), volume)
	for i, r := range residuals {
		fmt.Printf("  %d: %.2f x %.2f x %.2f cm (%.2f cm^3)\n", i+1, r[0], r[1], r[2], r.Volume())
	}
	return nil
}

// FitCmd exposes E3: how many copies of one item fit in a box.
type FitCmd struct {
	Width  float64 `help:"Item width in cm." required:""`
	Length float64 `help:"Item length in cm." required:""`
	Height float64 `help:"Item height in cm." required:""`
	Cap    int     `help:"Stop after this many items have been placed." default:"1000000"`
	boxFlags
}

func (c *FitCmd) Run() error {
	box, err := c.resolve()
	if err != nil {
		return err
	}

	item := parseDimsTriple(c.Width, c.Length, c.Height)
	packed, remaining := packer.HowManyFit(item, box, c.Cap)

	fmt.Printf("Fits %d copies of %.2f x %.2f x %.2f cm into %s (%.2f x %.2f x %.2f cm)\n",
		packed, item[0], item[1], item[2], box.Name, box.Interior[0], box.Interior[1], box.Interior[2])
	fmt.Printf("Remaining volume: %.2f cm^3\n", remaining)
	return nil
}

// EstimateCmd is a volume-ratio budgeting pre-check, ahead of running the
// real packer: "about how many of this box should I buy."
type EstimateCmd struct {
	Width       float64 `help:"Item width in cm." required:""`
	Length      float64 `help:"Item length in cm." required:""`
	Height      float64 `help:"Item height in cm." required:""`
	Quantity    int     `help:"Number of copies of the item." default:"1"`
	WastePercent float64 `help:"Expected packing inefficiency, percent." name:"waste-percent" default:"25"`
	PricePerBox float64 `help:"Price per box, for an estimated total cost (0 to skip)." name:"price-per-box"`
	boxFlags
}

func (c *EstimateCmd) Run() error {
	box, err := c.resolve()
	if err != nil {
		return err
	}
	if c.Quantity <= 0 {
		return fmt.Errorf("cli: --quantity must be positive")
	}

	dims := parseDimsTriple(c.Width, c.Length, c.Height)
	items := make([]model.Item, c.Quantity)
	for i := range items {
		items[i] = model.Item{ID: fmt.Sprintf("item#%d", i+1), Dims: dims}
	}

	estimate := packer.EstimateBoxesNeeded(items, box, c.WastePercent, c.PricePerBox)

	fmt.Printf("Total item volume: %.2f cm^3 across %d item(s)\n", estimate.TotalItemVolume, c.Quantity)
	fmt.Printf("Box interior volume: %.2f cm^3\n", estimate.BoxInteriorVolume)
	fmt.Printf("Exact ratio: %.3f boxes, minimum: %d, with %.0f%% waste margin: %d\n",
		estimate.BoxesNeededExact, estimate.BoxesNeededMin, estimate.WastePercent, estimate.BoxesWithWaste)
	if c.PricePerBox > 0 {
		fmt.Printf("Estimated cost: %.2f (at %.2f/box)\n", estimate.EstimatedCost, estimate.PricePerBox)
	}
	return nil
}
