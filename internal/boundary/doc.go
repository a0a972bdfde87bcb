// Package boundary gives a body to the contract of the systems standing
// outside the packing engine itself: unit conversion, duplicate box-name
// rejection, and candidate-box filtering. It is the seam between a raw,
// caller-supplied shipment request and the canonical model.Item/model.Box
// values internal/packer consumes — converting units, expanding
// quantities, sorting dimension triples, and filtering candidate boxes
// before anything reaches the packing engine.
//
// Nothing here is meant to be the production version of the systems it
// stands in for. UnitConverter covers a fixed, small unit set; JSON shape
// validation (required fields, types) stays the caller's job.
package boundary
