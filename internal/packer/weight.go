package packer

import (
	"fmt"

	"github.com/shotput/boxpacker/internal/model"
)

// RedistributeWeight enforces maxWeight on the output of PackBox. Any
// parcel whose tare-inclusive weight exceeds the cap sheds items off its
// tail — the order PackBox happened to place them in, not by size or
// weight — into a running overflow parcel shared across the whole box,
// closing it and opening the next one whenever the next shed item would
// itself push the overflow parcel over the cap.
//
// This is tail-biased and not weight-optimal: a lighter item earlier in
// the parcel might have been the better one to shed. It is kept exactly
// this way for compatibility with shipments already packed against it.
//
// A single item that exceeds maxWeight on its own (net of box tare) can
// never be redistributed into any parcel, including the overflow one, so
// it is reported as an error up front rather than discovered mid-shed.
func RedistributeWeight(parcels []model.Parcel, tareWeight, maxWeight float64) ([]model.Parcel, error) {
	for _, p := range parcels {
		for _, it := range p.Items {
			if it.Weight+tareWeight > maxWeight {
				return nil, fmt.Errorf("%w: item %q weighs %.4g, cap is %.4g net of tare", model.ErrItemTooHeavy, it.ID, it.Weight, maxWeight-tareWeight)
			}
		}
	}

	var result []model.Parcel
	var overflow []model.Parcel
	var current model.Parcel
	currentOpen := false

	closeCurrent := func() {
		if currentOpen && len(current.Items) > 0 {
			overflow = append(overflow, current)
		}
		current = model.Parcel{}
		currentOpen = false
	}

	for _, orig := range parcels {
		p := model.Parcel{Items: append([]model.Item(nil), orig.Items...)}

		for p.TotalWeight(tareWeight) > maxWeight {
			last := p.Items[len(p.Items)-1]
			p.Items = p.Items[:len(p.Items)-1]

			if !currentOpen {
				current = model.Parcel{}
				currentOpen = true
			}
			if current.TotalWeight(tareWeight)+last.Weight > maxWeight {
				closeCurrent()
				current = model.Parcel{Items: []model.Item{last}}
				currentOpen = true
			} else {
				current.Items = append(current.Items, last)
			}
		}

		result = append(result, p)
	}

	closeCurrent()
	result = append(result, overflow...)
	return result, nil
}
