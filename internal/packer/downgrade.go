package packer

import (
	"sort"

	"github.com/shotput/boxpacker/internal/model"
)

// DowngradeLastParcel looks for a smaller box that could ship the final
// parcel of an already-selected packing on its own, so a shipment that
// mostly fills big boxes isn't forced to ship a nearly-empty final parcel
// in the same size as the rest.
//
// It only runs when selected produced at least two parcels — a single
// parcel is already the whole shipment and has nothing to downgrade
// against. Candidate boxes are tried in ascending volume order, smallest
// first, and only those strictly smaller than selected; a candidate is
// skipped outright if any item in the last parcel wouldn't fit it at all,
// rather than handed to PackBox, which assumes that can't happen.
//
// Returns nil if no smaller box can hold the final parcel as a single
// parcel by itself.
func DowngradeLastParcel(boxes []model.Box, selected model.Box, parcels []model.Parcel, maxWeight float64) *model.LastParcel {
	if len(parcels) < 2 {
		return nil
	}

	lastItems := parcels[len(parcels)-1].Items
	if len(lastItems) == 0 {
		return nil
	}

	candidates := append([]model.Box(nil), boxes...)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Volume() < candidates[j].Volume()
	})

	selectedVolume := selected.Volume()
	for _, b := range candidates {
		if b.Volume() >= selectedVolume {
			continue
		}
		if !fitsAll(lastItems, b.Interior) {
			continue
		}

		repacked := PackBox(lastItems, b)
		redistributed, err := RedistributeWeight(repacked, b.TareWeight, maxWeight)
		if err != nil {
			continue
		}
		if len(redistributed) == 1 {
			return &model.LastParcel{Box: b, Parcel: redistributed[0]}
		}
	}

	return nil
}
