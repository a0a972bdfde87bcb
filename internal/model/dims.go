package model

import "sort"

// Dimensions is an ordered triple of non-negative lengths, always sorted
// ascending before it enters any geometric code: Dimensions[0] is the
// shortest side, Dimensions[1] the middle, Dimensions[2] the longest. Every
// constructor in this package enforces the sort so callers elsewhere never
// have to.
type Dimensions [3]float64

// NewDimensions sorts a, b, c ascending and returns the resulting triple.
func NewDimensions(a, b, c float64) Dimensions {
	d := Dimensions{a, b, c}
	sort.Float64s(d[:])
	return d
}

// Sorted reports whether d is already in ascending order. Used by tests and
// assertions that want to catch a construction path that bypassed
// NewDimensions.
func (d Dimensions) Sorted() bool {
	return d[0] <= d[1] && d[1] <= d[2]
}

// IsZero reports whether any axis of d is zero, meaning d has no volume.
func (d Dimensions) IsZero() bool {
	return d[0] == 0 || d[1] == 0 || d[2] == 0
}

// Volume returns the product of the three axes.
func (d Dimensions) Volume() float64 {
	return d[0] * d[1] * d[2]
}

// Fits reports whether item fits inside block: true iff block[i] >= item[i]
// for every axis i. Both triples must already be sorted ascending —
// rotation equivalence is handled entirely by that precondition, so any
// axis-aligned rotation of item reduces to the same comparison.
func Fits(item, block Dimensions) bool {
	return block[0] >= item[0] && block[1] >= item[1] && block[2] >= item[2]
}
