package packer

import (
	"sort"

	"github.com/shotput/boxpacker/internal/model"
)

// PackBox runs the first-fit-decreasing box packer: items enter sorted by
// longest dimension descending (ties keep input order), and whenever the
// current parcel's work-list runs dry with candidates still unplaced, a
// fresh parcel is opened against a new copy of box's interior.
//
// PackBox assumes every item fits box.Interior on its own — the external
// boundary is responsible for only offering candidate boxes that clear
// that bar, because a box that can't hold some item would otherwise
// send this loop opening empty parcels forever. Callers that can't make
// that guarantee (the last-parcel downgrade, the single-box pre-pack
// diagnostic) check fitsAll first and skip the box entirely rather than
// invoke PackBox against it.
func PackBox(items []model.Item, box model.Box) []model.Parcel {
	ordered := append([]model.Item(nil), items...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Dims[2] > ordered[j].Dims[2]
	})

	candidates := ordered
	var work []model.Block
	var parcels []model.Parcel

	for len(candidates) > 0 {
		if len(work) == 0 {
			parcels = append(parcels, model.Parcel{})
			work = []model.Block{box.Interior}
		}
		InsertIntoBlock(&work, &candidates, &parcels[len(parcels)-1])
	}

	return parcels
}

// fitsAll reports whether every item fits within block on its own. Used to
// guard calls into PackBox where the box wasn't already filtered by the
// external boundary.
func fitsAll(items []model.Item, block model.Block) bool {
	for _, it := range items {
		if !model.Fits(it.Dims, block) {
			return false
		}
	}
	return true
}
