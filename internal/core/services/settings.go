package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
	"github.com/custodia-labs/aurora-cli/internal/core/ports/driven"
	"github.com/custodia-labs/aurora-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyDataDir    = "data_dir"
	KeyOutputDir  = "output_dir"
	KeyFormat     = "format"
	KeyHemisphere = "hemisphere"
	KeyFilePrefix = "file_prefix"
)

// SettingsService resolves the effective settings.
// Precedence, lowest first: defaults, config file, overrides.
type SettingsService struct {
	configStore driven.ConfigStore
	overrides   []driven.SettingsOverrides
}

// NewSettingsService creates a new settings service.
// A nil config store means only defaults and overrides apply.
func NewSettingsService(configStore driven.ConfigStore, overrides ...driven.SettingsOverrides) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		overrides:   overrides,
	}
}

// Get returns the effective settings.
func (s *SettingsService) Get() (domain.Settings, error) {
	settings := domain.DefaultSettings()

	if s.configStore != nil {
		settings.DataDir = s.getString(KeyDataDir, settings.DataDir)
		settings.OutputDir = s.getString(KeyOutputDir, settings.OutputDir)
		settings.FilePrefix = s.getString(KeyFilePrefix, settings.FilePrefix)
	}

	if s.configStore != nil {
		format, err := domain.ParseFormat(s.getString(KeyFormat, string(settings.Format)))
		if err != nil {
			return settings, fmt.Errorf("config %s: %w", KeyFormat, err)
		}
		hemisphere, err := domain.ParseHemisphere(s.configStore.GetString(KeyHemisphere))
		if err != nil {
			return settings, fmt.Errorf("config %s: %w", KeyHemisphere, err)
		}
		settings.Format, settings.Hemisphere = format, hemisphere
	}

	for _, o := range s.overrides {
		if o == nil {
			continue
		}
		if err := o.Apply(&settings); err != nil {
			return settings, err
		}
	}

	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

// Set validates and persists a single config key.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	value = strings.TrimSpace(value)

	switch key {
	case KeyDataDir, KeyOutputDir:
	case KeyFormat:
		f, err := domain.ParseFormat(value)
		if err != nil {
			return err
		}
		value = string(f)
	case KeyHemisphere:
		h, err := domain.ParseHemisphere(value)
		if err != nil {
			return err
		}
		value = string(h)
	case KeyFilePrefix:
		if value == "" || strings.ContainsAny(value, `/\`) {
			return fmt.Errorf("%w: file prefix %q", domain.ErrInvalidInput, value)
		}
	default:
		return fmt.Errorf("%w: unknown config key %q (valid keys: %s)",
			domain.ErrInvalidInput, key, strings.Join(s.Keys(), ", "))
	}

	return s.configStore.Set(key, value)
}

// Keys returns the recognised config keys.
func (s *SettingsService) Keys() []string {
	return []string{KeyDataDir, KeyOutputDir, KeyFormat, KeyHemisphere, KeyFilePrefix}
}

// ConfigPath returns the config file location.
func (s *SettingsService) ConfigPath() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}
