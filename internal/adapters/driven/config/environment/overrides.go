// Package environment reads AURORA_* environment variables as settings overrides.
package environment

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
	"github.com/custodia-labs/aurora-cli/internal/core/ports/driven"
	"github.com/custodia-labs/aurora-cli/internal/logger"
)

// Prefix is prepended to every variable name.
const Prefix = "AURORA_"

// Ensure Overrides implements the interface.
var _ driven.SettingsOverrides = (*Overrides)(nil)

type variables struct {
	DataDir    string `env:"DATA_DIR"`
	OutputDir  string `env:"OUTPUT_DIR"`
	Format     string `env:"FORMAT"`
	Hemisphere string `env:"HEMISPHERE"`
	FilePrefix string `env:"FILE_PREFIX"`
}

// Overrides applies AURORA_DATA_DIR, AURORA_OUTPUT_DIR, AURORA_FORMAT,
// AURORA_HEMISPHERE and AURORA_FILE_PREFIX. Unset or empty variables
// leave the setting unchanged.
type Overrides struct {
	environment map[string]string
}

// NewOverrides reads from the process environment.
func NewOverrides() *Overrides {
	return &Overrides{}
}

// NewOverridesFrom reads from a fixed environment, keyed by full
// variable name.
func NewOverridesFrom(environment map[string]string) *Overrides {
	return &Overrides{environment: environment}
}

// Apply overwrites the settings the environment defines.
func (o *Overrides) Apply(settings *domain.Settings) error {
	opts := env.Options{Prefix: Prefix}
	if o.environment != nil {
		opts.Environment = o.environment
	}

	var vars variables
	if err := env.ParseWithOptions(&vars, opts); err != nil {
		return fmt.Errorf("read %s environment: %w", Prefix, err)
	}

	if vars.DataDir != "" {
		settings.DataDir = vars.DataDir
	}
	if vars.OutputDir != "" {
		settings.OutputDir = vars.OutputDir
	}
	if vars.Format != "" {
		f, err := domain.ParseFormat(vars.Format)
		if err != nil {
			return fmt.Errorf("%sFORMAT: %w", Prefix, err)
		}
		settings.Format = f
	}
	if vars.Hemisphere != "" {
		h, err := domain.ParseHemisphere(vars.Hemisphere)
		if err != nil {
			return fmt.Errorf("%sHEMISPHERE: %w", Prefix, err)
		}
		settings.Hemisphere = h
	}
	if vars.FilePrefix != "" {
		settings.FilePrefix = vars.FilePrefix
	}

	logger.Debug("environment overrides applied: %+v", vars)
	return nil
}
