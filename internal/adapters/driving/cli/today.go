package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
)

var (
	todayDate       string
	todayHemisphere string
	todayDataDir    string
	todayJSON       bool
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Print the attributes and scores of a day",
	Long: `Print the calculated attributes of a day: day of year, lunar mansion,
moon phase, season and the six elective theme scores.
No file is written.`,
	Args: cobra.NoArgs,
	RunE: runToday,
}

func init() {
	todayCmd.Flags().StringVar(&todayDate, "date", "", "date as YYYY-MM-DD (default today)")
	todayCmd.Flags().StringVar(&todayHemisphere, "hemisphere", "", "season rule: south or north")
	todayCmd.Flags().StringVar(&todayDataDir, "data-dir", "", "directory holding the lookup data files")
	todayCmd.Flags().BoolVar(&todayJSON, "json", false, "output attributes as JSON")
	rootCmd.AddCommand(todayCmd)
}

// todayOutput is the JSON shape of the today command.
// Date and Weekday are printed the way the MCP astro_attributes tool prints them.
type todayOutput struct {
	domain.Attributes
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Mansion struct {
		Number int    `json:"number"`
		Name   string `json:"name"`
	} `json:"mansion"`
	Goddess string `json:"goddess,omitempty"`
}

func runToday(cmd *cobra.Command, _ []string) error {
	date, err := parseDateFlag(todayDate)
	if err != nil {
		return err
	}

	settings, err := effectiveSettings(overrides{dataDir: todayDataDir, hemisphere: todayHemisphere})
	if err != nil {
		return err
	}

	report, content, err := reportServices(settings)
	if err != nil {
		return err
	}

	attrs := report.Attributes(date, settings.Hemisphere)
	var resolved domain.Content
	if content != nil {
		resolved = content.Resolve(attrs)
	}

	if todayJSON {
		return outputTodayJSON(cmd, attrs, resolved)
	}
	outputTodayText(cmd, attrs, resolved)
	return nil
}

func outputTodayJSON(cmd *cobra.Command, attrs domain.Attributes, c domain.Content) error {
	out := todayOutput{
		Attributes: attrs,
		Date:       attrs.Date.Format(domain.DateLayout),
		Weekday:    attrs.Weekday.String(),
	}
	out.Mansion.Number = attrs.Mansion
	out.Mansion.Name = c.Mansion.Name
	out.Goddess = c.Goddess.Name

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal attributes: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputTodayText(cmd *cobra.Command, attrs domain.Attributes, c domain.Content) {
	cmd.Printf("Aurora Sagrada: %s\n", attrs.Date.Format("Monday, 2 January 2006"))
	cmd.Println()
	cmd.Printf("  Day of year:   %d\n", attrs.DayOfYear)
	if c.Mansion.Name != "" {
		cmd.Printf("  Lunar mansion: %d (%s)\n", attrs.Mansion, c.Mansion.Name)
	} else {
		cmd.Printf("  Lunar mansion: %d\n", attrs.Mansion)
	}
	cmd.Printf("  Lunar phase:   %s\n", attrs.Phase)
	cmd.Printf("  Season:        %s (%s hemisphere)\n", attrs.Season, attrs.Hemisphere)
	if c.Goddess.Name != "" {
		cmd.Printf("  Goddess:       %s\n", c.Goddess.Name)
	}
	cmd.Println()

	cmd.Println("Elections:")
	for _, s := range attrs.Scores {
		cmd.Printf("  %-18s %3d  %s\n", s.Theme.Label(), s.Score, s.Favorability)
	}
}
