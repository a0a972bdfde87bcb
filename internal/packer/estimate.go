package packer

import (
	"math"

	"github.com/shotput/boxpacker/internal/model"
)

// BoxBudgetEstimate is a rough, volume-ratio box count for budgeting
// purposes. It is not a packing result: real geometry always does worse
// than pure volume division, since items leave gaps a box packer can't
// close. Use Pack for an authoritative parcel count; use this to answer
// "about how many boxes should I buy" before committing to a shipment.
type BoxBudgetEstimate struct {
	TotalItemVolume   float64 `json:"total_item_volume"`
	BoxInteriorVolume float64 `json:"box_interior_volume"`
	BoxesNeededExact  float64 `json:"boxes_needed_exact"`
	BoxesNeededMin    int     `json:"boxes_needed_min"`
	BoxesWithWaste    int     `json:"boxes_with_waste"`
	WastePercent      float64 `json:"waste_percent"`
	EstimatedCost     float64 `json:"estimated_cost"`
	PricePerBox       float64 `json:"price_per_box"`
}

// EstimateBoxesNeeded computes a volume-only lower bound on how many
// copies of box would be needed to ship items, plus a waste-padded
// recommendation and cost. wastePercent accounts for the packing
// inefficiency Pack will actually incur (e.g. 25 budgets 25% more box
// volume than the items occupy); pricePerBox is optional and yields
// EstimatedCost = 0 when zero.
func EstimateBoxesNeeded(items []model.Item, box model.Box, wastePercent, pricePerBox float64) BoxBudgetEstimate {
	var totalVolume float64
	for _, it := range items {
		totalVolume += it.Dims.Volume()
	}

	boxVolume := box.Interior.Volume()
	if boxVolume <= 0 {
		return BoxBudgetEstimate{TotalItemVolume: totalVolume, WastePercent: wastePercent}
	}

	exact := totalVolume / boxVolume
	min := int(math.Ceil(exact))

	wasteFactor := 1.0 + wastePercent/100.0
	withWaste := int(math.Ceil(exact * wasteFactor))
	if withWaste < min {
		withWaste = min
	}

	return BoxBudgetEstimate{
		TotalItemVolume:   totalVolume,
		BoxInteriorVolume: boxVolume,
		BoxesNeededExact:  exact,
		BoxesNeededMin:    min,
		BoxesWithWaste:    withWaste,
		WastePercent:      wastePercent,
		EstimatedCost:     float64(withWaste) * pricePerBox,
		PricePerBox:       pricePerBox,
	}
}
