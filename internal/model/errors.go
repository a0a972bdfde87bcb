package model

import "errors"

// Error kinds surfaced by the packer and its boundary. None are retried
// internally: a call either returns a valid result or one of these,
// wrapped with context via fmt.Errorf("%w: ...") at the point of
// detection so errors.Is keeps working for callers.
var (
	// ErrDoesNotFit means an item's dims exceed a box's dims on some axis.
	ErrDoesNotFit = errors.New("item does not fit in box")

	// ErrNoBoxesFit means no candidate box accommodates the items.
	ErrNoBoxesFit = errors.New("no candidate box fits the items")

	// ErrItemTooHeavy means a single item's weight plus box tare exceeds
	// the max weight, so it can never anchor a parcel on its own.
	ErrItemTooHeavy = errors.New("item is too heavy for any parcel")

	// ErrDuplicateBoxName means two candidate boxes share a name.
	ErrDuplicateBoxName = errors.New("duplicate box name")

	// ErrEmptyInput means the box selector was invoked on an empty map of
	// per-box results, i.e. nothing to choose a winner from.
	ErrEmptyInput = errors.New("no packing results to select from")

	// ErrNoItems means Pack (or its boundary) was asked to pack an empty
	// item list. This is a distinct condition from ErrEmptyInput's
	// box-selector case, even though both describe "nothing to work with."
	ErrNoItems = errors.New("no items to pack")
)
