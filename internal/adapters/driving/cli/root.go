// Package cli provides the aurora command line interface.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/aurora-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/aurora-cli/internal/core/domain"
	"github.com/custodia-labs/aurora-cli/internal/core/ports/driving"
	"github.com/custodia-labs/aurora-cli/internal/logger"
)

// version is set at build time via ldflags or SetVersion.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Services builds the core services commands run against.
// Commands build them per run because flags change the effective settings.
type Services struct {
	// Settings opens the settings service for a config directory.
	// An empty directory selects the default location.
	Settings func(configDir string) (driving.SettingsService, error)

	// Report builds the report and content services for the effective settings.
	Report func(settings domain.Settings) (driving.ReportService, driving.ContentService, error)

	// Styler returns the terminal styler. plain is set when output is not a terminal.
	Styler func(plain bool) tui.Styler
}

// services holds the injected service factories.
var services *Services

// SetServices sets the service factories used by every command.
func SetServices(s *Services) {
	services = s
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var rootCmd = &cobra.Command{
	Use:   "aurora",
	Short: "Daily esoteric almanac reports",
	Long: `Aurora Sagrada computes the lunar mansion, moon phase, season and
elective scores of a day, and publishes them as a formatted report.

Reports can be written as PDF, Markdown, JSON or styled terminal text,
previewed interactively, or served to AI assistants over MCP.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger.SetOutput(cmd.ErrOrStderr())
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic output to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory holding config.toml (default ~/.aurora)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// overrides are the settings a command accepts as flags.
// Empty fields leave the configured value in place.
type overrides struct {
	dataDir    string
	format     string
	hemisphere string
}

// settingsService opens the settings service for the --config-dir flag.
func settingsService() (driving.SettingsService, error) {
	if services == nil || services.Settings == nil {
		return nil, errors.New("settings service not configured")
	}
	svc, err := services.Settings(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	return svc, nil
}

// effectiveSettings resolves defaults, config file and environment, then
// applies command flags on top.
func effectiveSettings(o overrides) (domain.Settings, error) {
	svc, err := settingsService()
	if err != nil {
		return domain.Settings{}, err
	}
	s, err := svc.Get()
	if err != nil {
		return domain.Settings{}, fmt.Errorf("loading settings: %w", err)
	}

	if o.dataDir != "" {
		s.DataDir = o.dataDir
	}
	if o.format != "" {
		f, err := domain.ParseFormat(o.format)
		if err != nil {
			return domain.Settings{}, err
		}
		s.Format = f
	}
	if o.hemisphere != "" {
		h, err := domain.ParseHemisphere(o.hemisphere)
		if err != nil {
			return domain.Settings{}, err
		}
		s.Hemisphere = h
	}
	return s, nil
}

// reportServices builds the report and content services for settings.
func reportServices(settings domain.Settings) (driving.ReportService, driving.ContentService, error) {
	if services == nil || services.Report == nil {
		return nil, nil, errors.New("report service not configured")
	}
	report, content, err := services.Report(settings)
	if err != nil {
		return nil, nil, fmt.Errorf("building report service: %w", err)
	}
	if report == nil {
		return nil, nil, errors.New("report service not configured")
	}
	return report, content, nil
}

// parseDateFlag parses a --date value; empty means today.
func parseDateFlag(s string) (time.Time, error) {
	if s == "" {
		return domain.Today(), nil
	}
	return domain.ParseDate(s)
}
