// Package catalog is the local, JSON-file-backed persistence layer for
// application config, box profiles, inventory presets, shipment
// templates, and full-data backups. It stands in for a real box-catalog
// database: a production deployment would replace the model.Inventory
// load/save functions here with a DB-backed implementation exposing the
// same shape, not extend this package into one.
package catalog
