package driving

import (
	"context"
	"io"
	"time"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
)

// ContentService resolves calculated attributes into descriptive content.
// No method fails: misses resolve to documented defaults.
type ContentService interface {
	// MansionData returns the record for a mansion number.
	MansionData(number int) domain.LunarMansionRecord

	// GoddessOfDay returns the goddess for the date's day of year.
	GoddessOfDay(date time.Time) domain.GoddessRecord

	// PhaseDescription returns the one-sentence description of a phase.
	PhaseDescription(phase domain.Phase) string

	// PhaseCorrespondences returns the colors, crystals and herbs of a phase.
	PhaseCorrespondences(phase domain.Phase) domain.PhaseCorrespondences

	// Resolve bundles every lookup for a set of attributes.
	Resolve(attrs domain.Attributes) domain.Content
}

// ReportService calculates, assembles and renders daily reports.
type ReportService interface {
	// Attributes calculates the astrological attributes of a date.
	Attributes(date time.Time, hemisphere domain.Hemisphere) domain.Attributes

	// Assemble builds the eight-section document for a date.
	Assemble(date time.Time, hemisphere domain.Hemisphere) *domain.ReportDocument

	// Render assembles the report and writes it in the given format to w.
	Render(ctx context.Context, req domain.ReportRequest, w io.Writer) (*domain.ReportDocument, error)

	// Generate assembles the report and writes it to a file.
	// On failure no file is left at the output path.
	Generate(ctx context.Context, req domain.ReportRequest) (*domain.ReportResult, error)

	// DefaultPath returns the artifact path used when none is requested.
	DefaultPath(date time.Time, format domain.Format) string
}
