package mcp

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
)

// AttributesInput is the input schema for the astro_attributes tool.
type AttributesInput struct {
	Date       string `json:"date,omitempty" jsonschema:"day to calculate as YYYY-MM-DD (default today)"`
	Hemisphere string `json:"hemisphere,omitempty" jsonschema:"south or north (default from config)"`
}

// AttributesOutput is the output schema for the astro_attributes tool.
type AttributesOutput struct {
	Date       string        `json:"date"`
	DayOfYear  int           `json:"day_of_year"`
	Weekday    string        `json:"weekday"`
	Mansion    int           `json:"mansion"`
	Phase      string        `json:"phase"`
	Season     string        `json:"season"`
	Hemisphere string        `json:"hemisphere"`
	Scores     []ScoreOutput `json:"scores"`
}

// ScoreOutput is one theme's favorability.
type ScoreOutput struct {
	Theme        string `json:"theme"`
	Label        string `json:"label"`
	Score        int    `json:"score"`
	Favorability string `json:"favorability"`
}

// ReportInput is the input schema for the daily_report tool.
type ReportInput struct {
	Date       string `json:"date,omitempty" jsonschema:"report day as YYYY-MM-DD (default today)"`
	Format     string `json:"format,omitempty" jsonschema:"md or json (default md)"`
	Hemisphere string `json:"hemisphere,omitempty" jsonschema:"south or north (default from config)"`
}

// ReportOutput is the output schema for the daily_report tool.
type ReportOutput struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Format string `json:"format"`
	Text   string `json:"text"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "astro_attributes",
		Description: "Calculate the lunar mansion, phase, season and theme scores for a day",
	}, s.handleAttributes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "daily_report",
		Description: "Render the Aurora Sagrada daily report as Markdown or JSON",
	}, s.handleReport)
}

// handleAttributes handles the astro_attributes tool invocation.
func (s *Server) handleAttributes(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AttributesInput,
) (*mcp.CallToolResult, AttributesOutput, error) {
	date, hemisphere, err := parseDayInput(input.Date, input.Hemisphere)
	if err != nil {
		return nil, AttributesOutput{}, err
	}

	attrs := s.ports.Report.Attributes(date, hemisphere)
	output := AttributesOutput{
		Date:       attrs.Date.Format(domain.DateLayout),
		DayOfYear:  attrs.DayOfYear,
		Weekday:    attrs.Weekday.String(),
		Mansion:    attrs.Mansion,
		Phase:      attrs.Phase.String(),
		Season:     attrs.Season.String(),
		Hemisphere: attrs.Hemisphere.String(),
		Scores:     make([]ScoreOutput, len(attrs.Scores)),
	}
	for i, sc := range attrs.Scores {
		output.Scores[i] = ScoreOutput{
			Theme:        string(sc.Theme),
			Label:        sc.Theme.Label(),
			Score:        sc.Score,
			Favorability: sc.Favorability.String(),
		}
	}

	return nil, output, nil
}

// handleReport handles the daily_report tool invocation.
func (s *Server) handleReport(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReportInput,
) (*mcp.CallToolResult, ReportOutput, error) {
	date, hemisphere, err := parseDayInput(input.Date, input.Hemisphere)
	if err != nil {
		return nil, ReportOutput{}, err
	}

	format := domain.FormatMarkdown
	if input.Format != "" {
		format, err = domain.ParseFormat(input.Format)
		if err != nil {
			return nil, ReportOutput{}, err
		}
	}
	if format != domain.FormatMarkdown && format != domain.FormatJSON {
		return nil, ReportOutput{}, fmt.Errorf("%w: %q (use md or json)", domain.ErrUnsupportedFormat, input.Format)
	}

	var buf bytes.Buffer
	doc, err := s.ports.Report.Render(ctx, domain.ReportRequest{
		Date:       date,
		Format:     format,
		Hemisphere: hemisphere,
	}, &buf)
	if err != nil {
		return nil, ReportOutput{}, err
	}

	return nil, ReportOutput{
		ID:     doc.ID,
		Date:   doc.Date.Format(domain.DateLayout),
		Format: format.String(),
		Text:   buf.String(),
	}, nil
}

// parseDayInput parses optional date and hemisphere arguments.
// An empty hemisphere is left empty so the service default applies.
func parseDayInput(date, hemisphere string) (time.Time, domain.Hemisphere, error) {
	day := domain.Today()
	if date != "" {
		parsed, err := domain.ParseDate(date)
		if err != nil {
			return time.Time{}, "", err
		}
		day = parsed
	}

	if hemisphere == "" {
		return day, "", nil
	}
	h, err := domain.ParseHemisphere(hemisphere)
	if err != nil {
		return time.Time{}, "", err
	}
	return day, h, nil
}
