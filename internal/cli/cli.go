package cli

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

const appName = "boxpacker"

// version is reported by the version subcommand. There is no build-time
// injection pipeline in this repo, so it stays a plain constant, bumped by
// hand alongside tagged releases.
const version = "0.1.0"

// CLI is the root command set. Each field is a leaf or nested subcommand;
// kong dispatches to whichever one the user named and calls its Run.
type CLI struct {
	Pack     *PackCmd     `cmd:"" help:"Pack an item manifest into parcels and pick the best box."`
	Estimate *EstimateCmd `cmd:"" help:"Estimate how many boxes of a given type a manifest would need."`
	Space    *SpaceCmd    `cmd:"" help:"Show the residual space left after placing one item in a box."`
	Fit      *FitCmd      `cmd:"" help:"Count how many copies of one item fit in a box."`

	Profile   ProfileCmd   `cmd:"" help:"Inspect and manage box profiles."`
	Inventory InventoryCmd `cmd:"" help:"Manage saved box and weight-cap presets."`
	Template  TemplateCmd  `cmd:"" help:"Manage reusable shipment templates."`
	Config    ConfigCmd    `cmd:"" help:"Show or change application defaults."`
	Backup    BackupCmd    `cmd:"" help:"Export or import the full local data set."`

	Version *VersionCmd `cmd:"" help:"Show version information."`
}

// Parse parses os.Args and runs the selected command, exiting the process
// with a non-zero status on error.
func Parse() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name(appName),
		kong.Description("3D bin-packing shipping engine — pick a box, pack it, ship it."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// VersionCmd prints the CLI version.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("%s %s\n", appName, version)
	return nil
}
