package packer

import "github.com/shotput/boxpacker/internal/model"

// idxMod3 normalizes a possibly-negative axis index into [0,3), mirroring
// the wraparound indexing (block[i-1], block[i-2]) the decomposition rule
// relies on.
func idxMod3(i int) int {
	return ((i % 3) + 3) % 3
}

// BestFit decomposes the free space remaining in block once item has been
// placed in its near corner, returning up to three residual blocks sorted
// ascending by volume. item and block must both already be canonicalized
// (ascending dimension triples) and item must fit block; callers that
// cannot guarantee the latter should check model.Fits first.
//
// The decomposition picks a "height" axis (side_1) to stack item against,
// then partitions the remaining footprint into two ground-level blocks
// along one of two axis pairings (side_2/side_3). Both candidate
// partitions are computed and the one whose first resulting block has the
// smaller volume is kept — this comparison, and
// the axis-selection scan order, are load-bearing: they reproduce the
// exact placement behavior existing shipments were packed against, not
// merely "a" valid decomposition.
func BestFit(item, block model.Dimensions) []model.Block {
	side1 := -1
	var upper *model.Dimensions
	h1 := item[2]

	for i := 0; i < 3; i++ {
		if block[i] >= 2*item[2] {
			side1 = i
			u := block
			u[i] = block[i] - item[2]
			d := model.NewDimensions(u[0], u[1], u[2])
			upper = &d
			break
		}
	}

	if side1 == -1 {
		for i := 0; i < 3; i++ {
			if block[i] == item[2] {
				side1 = i
				break
			}
		}
	}

	if side1 == -1 {
		for i := 0; i < 3; i++ {
			if block[i] >= item[2] {
				side1 = i
				d := model.NewDimensions(block[i]-item[2], item[1], item[0])
				upper = &d
				// Single-stack case: only the item's own footprint is
				// carved out above it, so the ground-level partition
				// below keeps the block's full height on this axis,
				// not just item[2].
				h1 = block[i]
				break
			}
		}
	}

	if side1 == -1 {
		return nil
	}

	i1 := idxMod3(side1 - 1)
	i2 := idxMod3(side1 - 2)

	var side2, side3 int
	switch {
	case item[1] > block[i1]:
		side2 = idxMod3(side1 - 2)
		side3 = idxMod3(side1 - 1)
	case item[1] > block[i2]:
		side2 = idxMod3(side1 - 1)
		side3 = idxMod3(side1 - 2)
	default:
		side2 = idxMod3(side1 + 1)
		side3 = idxMod3(side1 + 2)
	}

	b2a := model.NewDimensions(h1, block[side2], block[side3]-item[0])
	b3a := model.NewDimensions(h1, block[side2]-item[1], item[0])
	b2b := model.NewDimensions(h1, block[side2]-item[1], block[side3])
	b3b := model.NewDimensions(h1, block[side3]-item[0], item[1])

	var chosen2, chosen3 model.Dimensions
	if b2a.Volume() < b2b.Volume() {
		chosen2, chosen3 = b2a, b3a
	} else {
		chosen2, chosen3 = b2b, b3b
	}

	candidates := make([]model.Block, 0, 3)
	if upper != nil {
		candidates = append(candidates, *upper)
	}
	candidates = append(candidates, chosen2, chosen3)

	residuals := make([]model.Block, 0, len(candidates))
	for _, c := range candidates {
		if validResidual(c) {
			residuals = append(residuals, c)
		}
	}

	sortBlocksByVolume(residuals)
	return residuals
}

// validResidual discards degenerate blocks: a zero dimension, and a
// negative one, which would only arise from an item/block pairing that
// should never reach BestFit (item not fitting block).
func validResidual(d model.Dimensions) bool {
	return d[0] > 0 && d[1] > 0 && d[2] > 0
}

func sortBlocksByVolume(blocks []model.Block) {
	for i := 1; i < len(blocks); i++ {
		for j := i; j > 0 && blocks[j].Volume() < blocks[j-1].Volume(); j-- {
			blocks[j], blocks[j-1] = blocks[j-1], blocks[j]
		}
	}
}
