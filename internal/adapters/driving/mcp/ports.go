package mcp

import (
	"github.com/custodia-labs/aurora-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Report calculates attributes and renders reports.
	Report driving.ReportService

	// Content serves the lookup tables as resources. Optional.
	Content driving.ContentService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Report == nil {
		return ErrMissingReportService
	}
	return nil
}
