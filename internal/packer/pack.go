package packer

import (
	"errors"

	"github.com/shotput/boxpacker/internal/model"
)

// Pack runs the full per-box pipeline — box packer, weight redistribution,
// box selection, last-parcel downgrade — over every candidate box and
// returns the winning result.
//
// Pack assumes boxes has already been filtered so every item fits every
// box on its own (internal/boundary's job); it still checks defensively
// per box and skips any box that fails that check, rather than invoke
// PackBox against it and risk an endless reopen-empty-parcel loop.
//
// An empty items slice reports model.ErrNoItems, kept distinct from
// model.ErrEmptyInput, which is reserved for SelectBox's own
// nothing-to-choose-from condition.
func Pack(items []model.Item, boxes []model.Box, maxWeight float64) (model.PackResult, error) {
	if len(items) == 0 {
		return model.PackResult{}, model.ErrNoItems
	}
	if len(boxes) == 0 {
		return model.PackResult{}, model.ErrNoBoxesFit
	}

	parcelsByName := make(map[string][]model.Parcel, len(boxes))
	allTooHeavy := true
	anyAttempted := false

	for _, box := range boxes {
		if !fitsAll(items, box.Interior) {
			continue
		}
		anyAttempted = true

		raw := PackBox(items, box)
		redistributed, err := RedistributeWeight(raw, box.TareWeight, maxWeight)
		if err != nil {
			if !errors.Is(err, model.ErrItemTooHeavy) {
				allTooHeavy = false
			}
			continue
		}

		allTooHeavy = false
		parcelsByName[box.Name] = redistributed
	}

	if len(parcelsByName) == 0 {
		if anyAttempted && allTooHeavy {
			return model.PackResult{}, model.ErrItemTooHeavy
		}
		return model.PackResult{}, model.ErrNoBoxesFit
	}

	selectedBox, parcels, err := SelectBox(boxes, parcelsByName)
	if err != nil {
		return model.PackResult{}, err
	}

	result := model.PackResult{
		Box:        selectedBox,
		Parcels:    parcels,
		LastParcel: DowngradeLastParcel(boxes, selectedBox, parcels, maxWeight),
	}
	return result, nil
}
