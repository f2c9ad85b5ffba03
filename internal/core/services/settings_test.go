package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aurora-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/aurora-cli/internal/core/domain"
)

type overridesFunc func(*domain.Settings) error

func (f overridesFunc) Apply(s *domain.Settings) error { return f(s) }

func TestSettingsService_Get_Defaults(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	settings, err := svc.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestSettingsService_Get_NilStore(t *testing.T) {
	svc := NewSettingsService(nil)

	settings, err := svc.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
	assert.Empty(t, svc.ConfigPath())
	assert.ErrorIs(t, svc.Set(KeyFormat, "md"), domain.ErrNotImplemented)
}

func TestSettingsService_Get_ConfigFile(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		KeyDataDir:    "/data",
		KeyOutputDir:  "/out",
		KeyFormat:     "markdown",
		KeyHemisphere: "North",
		KeyFilePrefix: "guide",
	})
	svc := NewSettingsService(store)

	settings, err := svc.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.Settings{
		DataDir:    "/data",
		OutputDir:  "/out",
		Format:     domain.FormatMarkdown,
		Hemisphere: domain.HemisphereNorth,
		FilePrefix: "guide",
	}, settings)
}

func TestSettingsService_Get_InvalidConfigValue(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore(map[string]any{KeyFormat: "docx"}))

	_, err := svc.Get()

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestSettingsService_Get_OverridesWin(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{KeyFormat: "md", KeyOutputDir: "/out"})
	env := overridesFunc(func(s *domain.Settings) error {
		s.Format = domain.FormatJSON
		return nil
	})
	svc := NewSettingsService(store, nil, env)

	settings, err := svc.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.FormatJSON, settings.Format)
	assert.Equal(t, "/out", settings.OutputDir)
}

func TestSettingsService_Get_OverrideError(t *testing.T) {
	boom := errors.New("bad env")
	svc := NewSettingsService(nil, overridesFunc(func(*domain.Settings) error { return boom }))

	_, err := svc.Get()

	assert.ErrorIs(t, err, boom)
}

func TestSettingsService_Set(t *testing.T) {
	store := memory.NewConfigStore()
	svc := NewSettingsService(store)

	require.NoError(t, svc.Set(KeyFormat, " Markdown "))
	require.NoError(t, svc.Set(KeyHemisphere, "north"))
	require.NoError(t, svc.Set(KeyDataDir, "/data"))
	require.NoError(t, svc.Set(KeyFilePrefix, "daily"))

	assert.Equal(t, "md", store.GetString(KeyFormat))
	assert.Equal(t, "north", store.GetString(KeyHemisphere))
	assert.Equal(t, "/data", store.GetString(KeyDataDir))
	assert.Equal(t, "daily", store.GetString(KeyFilePrefix))
}

func TestSettingsService_Set_Invalid(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	tests := []struct {
		key, value string
		want       error
	}{
		{KeyFormat, "docx", domain.ErrUnsupportedFormat},
		{KeyHemisphere, "east", domain.ErrInvalidHemisphere},
		{KeyFilePrefix, "a/b", domain.ErrInvalidInput},
		{KeyFilePrefix, "", domain.ErrInvalidInput},
		{"colour", "gold", domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			assert.ErrorIs(t, svc.Set(tt.key, tt.value), tt.want)
		})
	}
}

func TestSettingsService_KeysAndPath(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, []string{"data_dir", "output_dir", "format", "hemisphere", "file_prefix"}, svc.Keys())
	assert.Equal(t, ":memory:", svc.ConfigPath())
}
