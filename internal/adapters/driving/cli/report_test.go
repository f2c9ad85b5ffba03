package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
)

func TestReportCmd_Flags(t *testing.T) {
	for _, name := range []string{"date", "output", "data-dir", "format", "hemisphere"} {
		assert.NotNil(t, reportCmd.Flags().Lookup(name), name)
	}
}

func TestReportCmd_WritesDefaultPath(t *testing.T) {
	env := setupServices(t)

	out, err := execute(t, "report", "--date", "2024-03-20", "--format", "md")

	require.NoError(t, err)
	want := filepath.Join(env.outDir, "aurora_sagrada_20240320.md")
	assert.Equal(t, want, strings.TrimSpace(out))

	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# AURORA SAGRADA"))
}

func TestReportCmd_ExplicitOutput(t *testing.T) {
	setupServices(t)
	path := filepath.Join(t.TempDir(), "nested", "day.json")

	out, err := execute(t, "report", "--date", "2024-01-20", "--format", "json", "--output", path)

	require.NoError(t, err)
	assert.Equal(t, path, strings.TrimSpace(out))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"date": "2024-01-20"`)
}

func TestReportCmd_InvalidDate(t *testing.T) {
	env := setupServices(t)

	_, err := execute(t, "report", "--date", "2024-13-45", "--format", "md")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
	assert.Contains(t, err.Error(), `invalid date "2024-13-45": use YYYY-MM-DD`)

	entries, err := os.ReadDir(env.outDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no artifact for an invalid date")
}

func TestReportCmd_UnsupportedFormat(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "report", "--date", "2024-03-20", "--format", "docx")

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestReportCmd_UnregisteredFormat(t *testing.T) {
	env := setupServices(t)

	// pdf is valid but the test registry has no pdf renderer.
	_, err := execute(t, "report", "--date", "2024-03-20")

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	entries, _ := os.ReadDir(env.outDir)
	assert.Empty(t, entries)
}

func TestReportCmd_FormatFromConfig(t *testing.T) {
	env := setupServices(t)
	require.NoError(t, env.store.Set("format", "md"))

	out, err := execute(t, "report", "--date", "2024-03-20")

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), ".md"))
}

func TestReportCmd_RejectsArgs(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "report", "extra")

	assert.Error(t, err)
}
