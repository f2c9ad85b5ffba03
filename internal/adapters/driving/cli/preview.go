package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/aurora-cli/internal/adapters/driving/tui"
)

// defaultWidth is used when the output width cannot be detected.
const defaultWidth = 80

var (
	previewDate       string
	previewHemisphere string
	previewDataDir    string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the daily report in the terminal",
	Long: `Render the report as styled terminal text.

On a terminal the report opens in a scrollable pager:
  ↑/k, ↓/j   Scroll
  ←/h, →/l   Previous / next day
  t          Today
  s          Switch hemisphere
  tab        Attributes and scores
  ?          Toggle help
  q          Quit

When output is redirected the plain report is printed instead.`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&previewDate, "date", "", "report date as YYYY-MM-DD (default today)")
	previewCmd.Flags().StringVar(&previewHemisphere, "hemisphere", "", "season rule: south or north")
	previewCmd.Flags().StringVar(&previewDataDir, "data-dir", "", "directory holding the lookup data files")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	date, err := parseDateFlag(previewDate)
	if err != nil {
		return err
	}

	settings, err := effectiveSettings(overrides{dataDir: previewDataDir, hemisphere: previewHemisphere})
	if err != nil {
		return err
	}

	report, _, err := reportServices(settings)
	if err != nil {
		return err
	}
	if services.Styler == nil {
		return fmt.Errorf("terminal styler not configured")
	}

	out := cmd.OutOrStdout()
	interactive := isTerminal(out)
	styler := services.Styler(!interactive)

	if !interactive {
		doc := report.Assemble(date, settings.Hemisphere)
		text, err := styler.Style(doc, terminalWidth(out))
		if err != nil {
			return fmt.Errorf("rendering preview: %w", err)
		}
		cmd.Print(text)
		return nil
	}

	app, err := tui.NewApp(tui.NewPorts(report, styler), date, settings.Hemisphere)
	if err != nil {
		return fmt.Errorf("failed to create preview: %w", err)
	}
	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("preview error: %w", err)
	}
	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}

// terminalWidth returns the column count of w, or defaultWidth.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultWidth
}
