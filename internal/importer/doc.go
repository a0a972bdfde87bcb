// Package importer reads an item manifest from CSV or Excel into
// []model.ItemRequest: automatic CSV delimiter detection, case-insensitive
// header aliasing, and a positional fallback when no header row is
// present. Quantity expansion and unit conversion happen downstream, in
// internal/boundary — this package's only job is turning spreadsheet rows
// into request structs.
package importer
