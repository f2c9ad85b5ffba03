// Package attributes provides the calculated-attributes view for the TUI.
package attributes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/aurora-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/aurora-cli/internal/core/domain"
)

// barWidth is the width of a full score bar.
const barWidth = 20

// View shows the attributes and theme scores of the day being previewed.
type View struct {
	styles *styles.Styles
	attrs  *domain.Attributes
	width  int
	height int
}

// NewView creates a new attributes view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s}
}

// SetAttributes replaces the displayed attributes.
func (v *View) SetAttributes(attrs domain.Attributes) {
	v.attrs = &attrs
}

// SetSize sets the area available to the view.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// View renders the attribute table followed by one bar per theme.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Astrological Attributes"))
	b.WriteString("\n\n")

	if v.attrs == nil {
		b.WriteString(v.styles.Muted.Render("(No report loaded)"))
		return b.String()
	}
	a := v.attrs

	rows := [][2]string{
		{"Date", a.Date.Format(domain.DateLayout)},
		{"Weekday", a.Weekday.String()},
		{"Day of year", fmt.Sprintf("%d", a.DayOfYear)},
		{"Lunar mansion", fmt.Sprintf("%d", a.Mansion)},
		{"Lunar phase", a.Phase.String()},
		{"Season", a.Season.String()},
		{"Hemisphere", a.Hemisphere.String()},
	}
	for _, r := range rows {
		b.WriteString(v.styles.Label.Width(16).Render(r[0]))
		b.WriteString(v.styles.Normal.Render(r[1]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render("Elections"))
	b.WriteString("\n")
	for _, s := range a.Scores {
		b.WriteString(v.scoreLine(s))
		b.WriteString("\n")
	}
	return b.String()
}

func (v *View) scoreLine(s domain.ThemeScore) string {
	filled := s.Score * barWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	band := v.styles.Favorability(s.Favorability)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		v.styles.Label.Width(20).Render(s.Theme.Label()),
		band.Render(bar),
		v.styles.Normal.Render(fmt.Sprintf(" %3d ", s.Score)),
		band.Render(s.Favorability.String()),
	)
}
