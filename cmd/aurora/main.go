// Package main is the entry point of the aurora command.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"

	configfile "github.com/custodia-labs/aurora-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/aurora-cli/internal/adapters/driven/config/environment"
	"github.com/custodia-labs/aurora-cli/internal/adapters/driven/datafiles"
	"github.com/custodia-labs/aurora-cli/internal/adapters/driven/render/jsondoc"
	"github.com/custodia-labs/aurora-cli/internal/adapters/driven/render/markdown"
	"github.com/custodia-labs/aurora-cli/internal/adapters/driven/render/pdf"
	"github.com/custodia-labs/aurora-cli/internal/adapters/driven/render/terminal"
	storagefile "github.com/custodia-labs/aurora-cli/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/aurora-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/aurora-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/aurora-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/aurora-cli/internal/core/domain"
	"github.com/custodia-labs/aurora-cli/internal/core/ports/driving"
	"github.com/custodia-labs/aurora-cli/internal/core/services"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetServices(&cli.Services{
		Settings: openSettings,
		Report:   buildReport,
		Styler:   newStyler,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.ExecuteContext(ctx); err != nil {
		// cobra has already printed the error.
		stop()
		os.Exit(1)
	}
}

// openSettings layers AURORA_* environment variables over config.toml in dir.
func openSettings(dir string) (driving.SettingsService, error) {
	store, err := configfile.NewConfigStore(dir)
	if err != nil {
		return nil, err
	}
	return services.NewSettingsService(store, environment.NewOverrides()), nil
}

// buildReport wires the data files, renderers and artifact store for settings.
func buildReport(settings domain.Settings) (driving.ReportService, driving.ContentService, error) {
	tables := memory.NewTableCache(datafiles.NewLoader(settings.DataDir))
	content := services.NewContentService(tables)

	renderers := services.NewRendererRegistry(
		pdf.NewRenderer(),
		markdown.NewRenderer(),
		jsondoc.NewRenderer(),
		// Artifacts are files, so the terminal format is written without ANSI codes.
		terminal.NewRenderer(terminal.DefaultWidth, terminal.StylePlain),
	)

	report := services.NewReportService(content, renderers, storagefile.NewArtifactStore(), settings)
	return report, content, nil
}

// newStyler returns the preview styler. The background is probed here,
// before the pager takes over the terminal.
func newStyler(plain bool) tui.Styler {
	style := terminal.StylePlain
	if !plain {
		style = terminal.StyleLight
		if lipgloss.HasDarkBackground() {
			style = terminal.StyleDark
		}
	}
	return tui.StylerFunc(func(doc *domain.ReportDocument, width int) (string, error) {
		return terminal.NewRenderer(width, style).RenderString(doc)
	})
}
