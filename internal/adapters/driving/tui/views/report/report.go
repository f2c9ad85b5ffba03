// Package report provides the scrollable report pager for the TUI.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/aurora-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/aurora-cli/internal/adapters/driving/tui/styles"
)

// headerLines is the number of lines above the viewport: title and separator.
const headerLines = 2

// View is the report pager.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	viewport viewport.Model

	title   string
	content string
	err     error
	loading bool
	width   int
	height  int
}

// NewView creates a new report pager.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:   s,
		keymap:   km,
		viewport: viewport.New(80, 20),
		title:    "Aurora Sagrada",
	}
}

// SetSize sets the area available to the view, in cells.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = max(height-headerLines, 1)
}

// SetLoading marks the report as being loaded.
func (v *View) SetLoading() {
	v.loading = true
	v.err = nil
}

// SetReport replaces the displayed report and scrolls to the top.
func (v *View) SetReport(title, content string) {
	v.loading = false
	v.err = nil
	v.title = title
	v.content = content
	v.viewport.SetContent(content)
	v.viewport.GotoTop()
}

// SetError displays err instead of the report.
func (v *View) SetError(err error) {
	v.loading = false
	v.err = err
}

// Title returns the title above the report.
func (v *View) Title() string {
	return v.title
}

// Content returns the styled report text.
func (v *View) Content() string {
	return v.content
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}

// Offset returns the index of the first visible line.
func (v *View) Offset() int {
	return v.viewport.YOffset
}

// ScrollPercent returns how far the report has been scrolled, from 0 to 1.
func (v *View) ScrollPercent() float64 {
	return v.viewport.ScrollPercent()
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles scrolling keys. Other messages go to the viewport.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return v, cmd
	}

	switch {
	case key.Matches(keyMsg, v.keymap.Up):
		v.viewport.SetYOffset(v.viewport.YOffset - 1)
	case key.Matches(keyMsg, v.keymap.Down):
		v.viewport.SetYOffset(v.viewport.YOffset + 1)
	case key.Matches(keyMsg, v.keymap.PageUp):
		v.viewport.SetYOffset(v.viewport.YOffset - v.viewport.Height)
	case key.Matches(keyMsg, v.keymap.PageDown):
		v.viewport.SetYOffset(v.viewport.YOffset + v.viewport.Height)
	case key.Matches(keyMsg, v.keymap.Top):
		v.viewport.GotoTop()
	case key.Matches(keyMsg, v.keymap.Bottom):
		v.viewport.GotoBottom()
	}
	return v, nil
}

// View renders the title and the visible part of the report.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(v.title))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(strings.Repeat("─", max(min(v.width, 80), 1))))
	b.WriteString("\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading report..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err)))
	case strings.TrimSpace(v.content) == "":
		b.WriteString(v.styles.Muted.Render("(No content)"))
	default:
		b.WriteString(v.viewport.View())
	}
	return b.String()
}
