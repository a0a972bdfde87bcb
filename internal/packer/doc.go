// Package packer implements the 3D bin-packing engine: geometric
// primitives, recursive space decomposition, the single-block placer, the
// box packer, weight redistribution, box selection, and the last-parcel
// downgrade, plus the diagnostic queries built on the same primitives.
//
// Every exported entry point here assumes its model.Item and model.Box
// arguments already carry sorted Dimensions (model.NewItem/model.NewBox
// guarantee this) and, where it matters, that every item fits the box in
// question — the candidate-box filtering assigned to the external
// boundary (see internal/boundary) happens before this package is called.
package packer
