package packer

import "github.com/shotput/boxpacker/internal/model"

// SelectBox picks the winning candidate box from a set of per-box packing
// results: fewest parcels wins, ties broken by smaller box volume, further
// ties broken by whichever box comes first in boxes.
//
// boxes is iterated in its given order and used to look parcelsByName up
// by name, rather than ranging over the map directly — Go map iteration
// order is randomized per run, and the first-encountered tiebreak above
// only means anything against a stable, caller-supplied order.
//
// Returns model.ErrEmptyInput if none of boxes has an entry in
// parcelsByName — the selector was invoked with nothing to choose between.
func SelectBox(boxes []model.Box, parcelsByName map[string][]model.Parcel) (model.Box, []model.Parcel, error) {
	var bestBox model.Box
	var bestParcels []model.Parcel
	found := false

	for _, b := range boxes {
		parcels, ok := parcelsByName[b.Name]
		if !ok {
			continue
		}
		if !found {
			bestBox, bestParcels, found = b, parcels, true
			continue
		}
		if len(parcels) < len(bestParcels) ||
			(len(parcels) == len(bestParcels) && b.Volume() < bestBox.Volume()) {
			bestBox, bestParcels = b, parcels
		}
	}

	if !found {
		return model.Box{}, nil, model.ErrEmptyInput
	}
	return bestBox, bestParcels, nil
}
