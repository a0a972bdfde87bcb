// Package cli wires internal/boundary, internal/packer, internal/catalog,
// internal/importer, and internal/export together behind a kong-based
// command line: one root command with leaf and nested subcommands, each
// a struct with flags as fields and a Run method kong dispatches to.
package cli
