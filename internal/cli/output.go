package cli

import (
	"fmt"

	"github.com/shotput/boxpacker/internal/model"
)

// printPackResult renders a PackResult as a human-readable summary: the
// chosen box, each parcel's items and weight, and the downgrade if any.
func printPackResult(result model.PackResult, maxWeight float64) {
	fmt.Printf("Box: %s (%.2f x %.2f x %.2f cm, tare %.0f g)\n",
		result.Box.Name, result.Box.Interior[0], result.Box.Interior[1], result.Box.Interior[2], result.Box.TareWeight)
	fmt.Printf("Parcels: %d\n\n", len(result.Parcels))

	total := len(result.Parcels)
	for i, p := range result.Parcels {
		box := result.Box
		label := fmt.Sprintf("Parcel %d/%d", i+1, total)
		if result.LastParcel != nil && i == total-1 {
			box = result.LastParcel.Box
			label += fmt.Sprintf(" (downgraded to %s)", box.Name)
		}
		fmt.Printf("%s — %d item(s), %.0f/%.0f g\n", label, len(p.Items), p.TotalWeight(box.TareWeight), maxWeight)
		for _, it := range p.Items {
			fmt.Printf("  - %s (%.1f x %.1f x %.1f cm, %.0f g)\n", it.ID, it.Dims[0], it.Dims[1], it.Dims[2], it.Weight)
		}
	}
}
