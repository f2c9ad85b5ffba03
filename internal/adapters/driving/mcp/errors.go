// Package mcp provides an MCP (Model Context Protocol) server adapter for Aurora.
// It lets AI assistants compute daily astro attributes and read rendered reports.
package mcp

import "errors"

// ErrMissingReportService is returned when the report service is not provided.
var ErrMissingReportService = errors.New("mcp: report service is required")
