package services

import (
	"fmt"
	"sync"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
	"github.com/custodia-labs/aurora-cli/internal/core/ports/driven"
)

// Ensure RendererRegistry implements the interface.
var _ driven.RendererRegistry = (*RendererRegistry)(nil)

// RendererRegistry maps formats to renderers.
type RendererRegistry struct {
	mu        sync.RWMutex
	renderers map[domain.Format]driven.Renderer
}

// NewRendererRegistry creates a registry holding the given renderers.
func NewRendererRegistry(renderers ...driven.Renderer) *RendererRegistry {
	r := &RendererRegistry{renderers: make(map[domain.Format]driven.Renderer)}
	for _, renderer := range renderers {
		r.Register(renderer)
	}
	return r
}

// Register adds or replaces the renderer for its format.
func (r *RendererRegistry) Register(renderer driven.Renderer) {
	if renderer == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[renderer.Format()] = renderer
}

// Get returns the renderer for a format.
func (r *RendererRegistry) Get(format domain.Format) (driven.Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	return renderer, nil
}

// Formats returns the registered formats in domain.Formats order.
func (r *RendererRegistry) Formats() []domain.Format {
	r.mu.RLock()
	defer r.mu.RUnlock()
	formats := make([]domain.Format, 0, len(r.renderers))
	for _, f := range domain.Formats() {
		if _, ok := r.renderers[f]; ok {
			formats = append(formats, f)
		}
	}
	return formats
}
