package memory

import (
	"bytes"
	"context"
	"io"
	"maps"
	"sync"

	"github.com/custodia-labs/aurora-cli/internal/core/ports/driven"
)

// Ensure ArtifactStore implements the interface.
var _ driven.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore keeps written artifacts in memory, keyed by path.
type ArtifactStore struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewArtifactStore creates an empty artifact store.
func NewArtifactStore() *ArtifactStore {
	return &ArtifactStore{files: make(map[string][]byte)}
}

// Write buffers the artifact and stores it only if fn succeeds.
func (s *ArtifactStore) Write(ctx context.Context, path string, fn func(w io.Writer) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = buf.Bytes()
	return nil
}

// Get returns the artifact stored at path.
func (s *ArtifactStore) Get(path string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.files[path]
	return b, ok
}

// Files returns a copy of every stored artifact.
func (s *ArtifactStore) Files() map[string][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.files)
}
