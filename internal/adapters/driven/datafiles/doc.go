// Package datafiles loads the lunar mansion and goddess tables from a
// data directory.
//
// Each table is a single document, JSON or YAML, keyed by number:
//
//	mansoes-lunares-expandido.json  {"mansoes": {"1": {...}, ...}}
//	deusas.json                     {"deusas":  {"1": {...}, ...}}
//
// The YAML form uses the same field names and is read from a .yaml or
// .yml file with the same base name. Loading is best-effort: a table
// that is missing or fails validation is returned empty.
package datafiles
