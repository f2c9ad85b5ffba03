package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the configuration",
	Long: `Inspect and edit config.toml.

Settings resolve in order: built-in defaults, config.toml, AURORA_*
environment variables, then command flags.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a config value",
	Long: `Set a value in config.toml.

Keys: data_dir, output_dir, format, hemisphere, file_prefix.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Printf("  Config file: %s\n", orNotSet(svc.ConfigPath()))
	cmd.Println()
	cmd.Printf("  data_dir:    %s\n", orNotSet(settings.DataDir))
	cmd.Printf("  output_dir:  %s\n", orNotSet(settings.OutputDir))
	cmd.Printf("  format:      %s\n", settings.Format)
	cmd.Printf("  hemisphere:  %s\n", settings.Hemisphere)
	cmd.Printf("  file_prefix: %s\n", settings.FilePrefix)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := svc.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("%w (keys: %s)", err, strings.Join(svc.Keys(), ", "))
		}
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	cmd.Println(orNotSet(svc.ConfigPath()))
	return nil
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
