package driven

import (
	"context"
	"io"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
)

// Renderer turns an assembled report into an artifact.
type Renderer interface {
	// Format returns the format this renderer produces.
	Format() domain.Format

	// Extension returns the file extension for artifacts, without the dot.
	Extension() string

	// Render writes the artifact for doc to w using layout.
	// On error the bytes written to w are not a valid artifact.
	Render(ctx context.Context, doc *domain.ReportDocument, layout domain.Layout, w io.Writer) error
}
