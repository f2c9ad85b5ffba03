package driven

import "github.com/custodia-labs/aurora-cli/internal/core/domain"

// RendererRegistry selects the renderer for an output format.
type RendererRegistry interface {
	// Get returns the renderer for a format.
	// Returns domain.ErrUnsupportedFormat if none is registered.
	Get(format domain.Format) (Renderer, error)

	// Register adds or replaces the renderer for its format.
	Register(renderer Renderer)

	// Formats returns the registered formats in a stable order.
	Formats() []domain.Format
}
