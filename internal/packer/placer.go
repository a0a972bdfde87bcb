package packer

import "github.com/shotput/boxpacker/internal/model"

// InsertIntoBlock processes the head of work, the FIFO block work-list: it
// finds the first remaining candidate that fits the head block, places it
// into parcel, removes it from candidates, and splits the head into
// residual blocks via BestFit. A residual is re-queued only if some
// remaining candidate would fit it — there is no point carrying a block no
// item could ever use. The head is always popped, whether or not a
// placement happened.
//
// Reports whether an item was placed, so callers that care about progress
// (as opposed to just draining the work-list) can tell the two cases apart.
func InsertIntoBlock(work *[]model.Block, candidates *[]model.Item, parcel *model.Parcel) bool {
	if len(*work) == 0 {
		return false
	}

	head := (*work)[0]
	rest := append([]model.Block(nil), (*work)[1:]...)

	idx := -1
	for i := range *candidates {
		if model.Fits((*candidates)[i].Dims, head) {
			idx = i
			break
		}
	}

	if idx == -1 {
		*work = rest
		return false
	}

	placed := (*candidates)[idx]
	remaining := append([]model.Item(nil), (*candidates)[:idx]...)
	remaining = append(remaining, (*candidates)[idx+1:]...)
	*candidates = remaining

	parcel.Items = append(parcel.Items, placed)

	for _, residual := range BestFit(placed.Dims, head) {
		if anyFits(*candidates, residual) {
			rest = append(rest, residual)
		}
	}

	*work = rest
	return true
}

func anyFits(candidates []model.Item, block model.Block) bool {
	for _, c := range candidates {
		if model.Fits(c.Dims, block) {
			return true
		}
	}
	return false
}
