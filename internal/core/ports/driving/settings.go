package driving

import "github.com/custodia-labs/aurora-cli/internal/core/domain"

// SettingsService resolves the effective settings from defaults,
// the config file and overrides.
type SettingsService interface {
	// Get returns the effective settings.
	Get() (domain.Settings, error)

	// Set persists a single config key.
	Set(key, value string) error

	// Keys returns the recognised config keys.
	Keys() []string

	// ConfigPath returns the config file location, if any.
	ConfigPath() string
}
