// Package model defines the data types shared across the box-packing
// engine: dimension triples, items, candidate boxes, blocks, parcels, and
// the packing result, plus the persisted configuration types (app
// defaults, box profiles, inventory, shipment templates) used by
// internal/catalog.
package model
