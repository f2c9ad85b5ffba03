package driven

import (
	"context"
	"io"
)

// ArtifactStore persists generated report files.
type ArtifactStore interface {
	// Write creates the file at path with the bytes fn writes.
	// The file appears at path only if fn returns nil; on any error
	// nothing is left behind and an existing file is untouched.
	Write(ctx context.Context, path string, fn func(w io.Writer) error) error
}
