// Package file stores report artifacts on the local filesystem.
package file

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/custodia-labs/aurora-cli/internal/core/ports/driven"
	"github.com/custodia-labs/aurora-cli/internal/logger"
)

// Ensure ArtifactStore implements the interface.
var _ driven.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore writes artifacts through a temporary file in the
// destination directory and renames it into place on success.
type ArtifactStore struct {
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// NewArtifactStore creates a filesystem artifact store.
func NewArtifactStore() *ArtifactStore {
	return &ArtifactStore{dirPerm: 0o755, filePerm: 0o644}
}

// Write creates path with the bytes fn writes.
func (s *ArtifactStore) Write(ctx context.Context, path string, fn func(w io.Writer) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, s.dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	logger.Debug("writing artifact via %s", tmpName)

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err = fn(tmp); err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmpName, s.filePerm); err != nil {
		return fmt.Errorf("set permissions: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename artifact: %w", err)
	}
	return nil
}
