// Package file provides the file-based configuration store.
//
// Settings live in a flat TOML document, ~/.aurora/config.toml by
// default:
//
//	data_dir   = "/home/me/aurora/data"
//	output_dir = "/home/me/aurora/reports"
//	format     = "pdf"
//	hemisphere = "south"
package file
