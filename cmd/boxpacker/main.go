// Command boxpacker is the CLI front end for the box-packing engine: pick
// the best shipping box for an item manifest, pack it into parcels, and
// optionally export a packing slip or QR-coded parcel labels.
//
// Build:
//
//	go build -o boxpacker ./cmd/boxpacker
package main

import "github.com/shotput/boxpacker/internal/cli"

func main() {
	cli.Parse()
}
