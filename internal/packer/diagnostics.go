package packer

import "github.com/shotput/boxpacker/internal/model"

// SpaceAfterPacking reports the residual blocks and their total volume
// left in box once a single item of the given dimensions is placed in it.
// Returns model.ErrDoesNotFit if the item doesn't fit the box at all.
func SpaceAfterPacking(item model.Dimensions, box model.Box) ([]model.Block, float64, error) {
	if !model.Fits(item, box.Interior) {
		return nil, 0, model.ErrDoesNotFit
	}

	residuals := BestFit(item, box.Interior)
	var volume float64
	for _, r := range residuals {
		volume += r.Volume()
	}
	return residuals, volume, nil
}

// HowManyFit reports how many copies of a single item dimension could be
// packed into box, up to cap copies, plus the interior volume left over.
//
// It runs the single-block placer against a work-list seeded with just
// box's interior and a candidate pool kept at four copies of the item —
// four because BestFit never emits more than three residual blocks per
// placement, so one call can never need more spare copies than that to
// correctly decide whether each new residual is worth keeping. Unlike
// PackBox, it never reopens a fresh parcel once the work-list drains: an
// item that doesn't fit the box at all simply drains the work-list
// immediately and reports zero packed, the full box volume.
func HowManyFit(item model.Dimensions, box model.Box, cap int) (int, float64) {
	work := []model.Block{box.Interior}
	candidates := make([]model.Item, 0, 4)

	packed := 0
	remaining := box.Interior.Volume()
	itemVolume := item.Volume()

	for len(work) > 0 && packed < cap {
		for len(candidates) < 4 {
			candidates = append(candidates, model.Item{ID: "probe", Dims: item})
		}

		parcel := &model.Parcel{}
		if InsertIntoBlock(&work, &candidates, parcel) {
			packed++
			remaining -= itemVolume
		}
	}

	return packed, remaining
}

// PrePackSingleBox runs the box packer and weight redistribution against a
// single candidate box, mirroring what Pack does per-box internally but
// exposed standalone for "would this one box work" queries. Skips calling
// PackBox (and reports model.ErrDoesNotFit) if any item can't fit box on
// its own.
func PrePackSingleBox(items []model.Item, box model.Box, maxWeight float64) ([]model.Parcel, error) {
	if !fitsAll(items, box.Interior) {
		return nil, model.ErrDoesNotFit
	}
	parcels := PackBox(items, box)
	return RedistributeWeight(parcels, box.TareWeight, maxWeight)
}
