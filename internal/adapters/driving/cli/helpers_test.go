package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/custodia-labs/aurora-cli/internal/adapters/driven/datafiles"
	"github.com/custodia-labs/aurora-cli/internal/adapters/driven/render/jsondoc"
	"github.com/custodia-labs/aurora-cli/internal/adapters/driven/render/markdown"
	"github.com/custodia-labs/aurora-cli/internal/adapters/driven/render/terminal"
	"github.com/custodia-labs/aurora-cli/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/aurora-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/aurora-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/aurora-cli/internal/core/domain"
	"github.com/custodia-labs/aurora-cli/internal/core/ports/driving"
	coresvc "github.com/custodia-labs/aurora-cli/internal/core/services"
	"github.com/custodia-labs/aurora-cli/internal/logger"
)

// testEnv is a fully wired set of services writing into a temp directory.
type testEnv struct {
	outDir     string
	store      *memory.ConfigStore
	configDirs []string
}

func plainStyler(bool) tui.Styler {
	return tui.StylerFunc(func(doc *domain.ReportDocument, width int) (string, error) {
		return terminal.NewRenderer(width, terminal.StylePlain).RenderString(doc)
	})
}

func setupServices(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{outDir: t.TempDir()}
	env.store = memory.NewConfigStore(map[string]any{"output_dir": env.outDir})

	SetServices(&Services{
		Settings: func(dir string) (driving.SettingsService, error) {
			env.configDirs = append(env.configDirs, dir)
			return coresvc.NewSettingsService(env.store), nil
		},
		Report: func(s domain.Settings) (driving.ReportService, driving.ContentService, error) {
			content := coresvc.NewContentService(memory.NewTableCache(datafiles.NewLoader(s.DataDir)))
			registry := coresvc.NewRendererRegistry(
				markdown.NewRenderer(),
				jsondoc.NewRenderer(),
				terminal.NewRenderer(80, terminal.StylePlain),
			)
			return coresvc.NewReportService(content, registry, file.NewArtifactStore(), s), content, nil
		},
		Styler: plainStyler,
	})
	t.Cleanup(func() {
		SetServices(nil)
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})
	return env
}

func resetFlags() {
	verbose, configDir = false, ""
	reportDate, reportOutput, reportDataDir, reportFormat, reportHemisphere = "", "", "", "", ""
	todayDate, todayHemisphere, todayDataDir, todayJSON = "", "", "", false
	previewDate, previewHemisphere, previewDataDir = "", "", ""
	mcpDataDir = ""
}

// execute runs the root command with args and returns everything written.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
