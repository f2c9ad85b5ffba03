// Package tui provides the interactive report preview for aurora.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/aurora-cli/internal/core/domain"
	"github.com/custodia-labs/aurora-cli/internal/core/ports/driving"
)

// Styler turns an assembled report into terminal text wrapped at width.
type Styler interface {
	Style(doc *domain.ReportDocument, width int) (string, error)
}

// StylerFunc adapts a function to Styler.
type StylerFunc func(doc *domain.ReportDocument, width int) (string, error)

// Style calls f.
func (f StylerFunc) Style(doc *domain.ReportDocument, width int) (string, error) {
	return f(doc, width)
}

// Ports aggregates the driving ports required by the TUI.
type Ports struct {
	// Report calculates and assembles reports.
	Report driving.ReportService

	// Styler renders assembled reports for the terminal.
	Styler Styler
}

// NewPorts creates a new Ports aggregate.
func NewPorts(report driving.ReportService, styler Styler) *Ports {
	return &Ports{Report: report, Styler: styler}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Report == nil {
		return ErrMissingReportService
	}
	if p.Styler == nil {
		return ErrMissingStyler
	}
	return nil
}
