package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
)

var (
	reportDate       string
	reportOutput     string
	reportDataDir    string
	reportFormat     string
	reportHemisphere string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the daily report",
	Long: `Generate the report for a day and write it to a file.

The report holds eight sections: header, general information, lunar
mansion, goddess of the day, lunar phase, elections, correspondences and
footer. Without --output it is written to the configured output directory
as <prefix>_YYYYMMDD.<ext>. The path of the written file is printed.

Examples:
  aurora report
  aurora report --date 2024-03-20 --format md
  aurora report --data-dir ./data --output today.pdf`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportDate, "date", "", "report date as YYYY-MM-DD (default today)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "output file path")
	reportCmd.Flags().StringVar(&reportDataDir, "data-dir", "", "directory holding the lookup data files")
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "", "output format: pdf, md, json or term")
	reportCmd.Flags().StringVar(&reportHemisphere, "hemisphere", "", "season rule: south or north")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	date, err := parseDateFlag(reportDate)
	if err != nil {
		return err
	}

	settings, err := effectiveSettings(overrides{
		dataDir:    reportDataDir,
		format:     reportFormat,
		hemisphere: reportHemisphere,
	})
	if err != nil {
		return err
	}

	report, _, err := reportServices(settings)
	if err != nil {
		return err
	}

	result, err := report.Generate(cmd.Context(), domain.ReportRequest{
		Date:       date,
		OutputPath: reportOutput,
		Format:     settings.Format,
		Hemisphere: settings.Hemisphere,
	})
	if err != nil {
		return fmt.Errorf("generating report: %w", err)
	}

	cmd.Println(result.Path)
	return nil
}
