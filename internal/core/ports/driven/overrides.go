package driven

import "github.com/custodia-labs/aurora-cli/internal/core/domain"

// SettingsOverrides applies settings from a source that takes precedence
// over the config file, such as environment variables.
type SettingsOverrides interface {
	// Apply overwrites the fields of settings that the source defines.
	Apply(settings *domain.Settings) error
}
