package file

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func TestArtifactStore_Write(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reports", "aurora_sagrada_20240320.md")

	err := NewArtifactStore().Write(context.Background(), path, writeString("# AURORA SAGRADA\n"))
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# AURORA SAGRADA\n", string(b))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestArtifactStore_Write_FailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")
	boom := errors.New("render failed")

	err := NewArtifactStore().Write(context.Background(), path, func(w io.Writer) error {
		_, _ = io.WriteString(w, "%PDF-1.3 partial")
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp file should be removed")
}

func TestArtifactStore_Write_FailureKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	err := NewArtifactStore().Write(context.Background(), path, func(io.Writer) error {
		return errors.New("boom")
	})
	require.Error(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))
}

func TestArtifactStore_Write_ReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.md")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, NewArtifactStore().Write(context.Background(), path, writeString("new")))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(b))
}

func TestArtifactStore_Write_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewArtifactStore().Write(ctx, filepath.Join(dir, "r.md"), writeString("x"))
	require.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
