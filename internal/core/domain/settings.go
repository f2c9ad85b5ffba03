package domain

import (
	"fmt"
	"strings"
)

// DefaultFilePrefix is prepended to generated artifact names.
const DefaultFilePrefix = "aurora_sagrada"

// Settings holds the effective configuration for report generation.
type Settings struct {
	// DataDir is the directory holding the lookup data files.
	// Empty means no data files; every lookup uses built-in defaults.
	DataDir string

	// OutputDir is where artifacts are written when no explicit path is given.
	// Empty means the current directory.
	OutputDir string

	// Format is the default artifact format.
	Format Format

	// Hemisphere selects the seasonal calendar.
	Hemisphere Hemisphere

	// FilePrefix is prepended to default artifact names.
	FilePrefix string
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Format:     FormatPDF,
		Hemisphere: HemisphereSouth,
		FilePrefix: DefaultFilePrefix,
	}
}

// Validate checks that enum fields hold recognised values.
func (s Settings) Validate() error {
	if !s.Format.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, s.Format)
	}
	if !s.Hemisphere.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidHemisphere, s.Hemisphere)
	}
	if strings.ContainsAny(s.FilePrefix, `/\`) {
		return fmt.Errorf("%w: file prefix must not contain path separators", ErrInvalidInput)
	}
	return nil
}
