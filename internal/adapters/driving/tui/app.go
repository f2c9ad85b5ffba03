package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/aurora-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/aurora-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/aurora-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/aurora-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/aurora-cli/internal/adapters/driving/tui/views/attributes"
	"github.com/custodia-labs/aurora-cli/internal/adapters/driving/tui/views/report"
	"github.com/custodia-labs/aurora-cli/internal/core/domain"
)

// statusLines is the height of the status bar.
const statusLines = 1

// App is the report preview following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	reportView     *report.View
	attributesView *attributes.View
	statusBar      *status.Bar

	// date and hemisphere select the report being previewed.
	date       time.Time
	hemisphere domain.Hemisphere

	// now supplies today's date for the Today binding.
	now func() time.Time

	// currentView tracks which view is active; previousView is restored
	// when leaving help.
	currentView  messages.ViewType
	previousView messages.ViewType

	// styledWidth is the width the current report text was wrapped at.
	styledWidth int

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates the terminal size is known.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a preview of the report for date. An invalid hemisphere
// falls back to the southern rule.
func NewApp(ports *Ports, date time.Time, hemisphere domain.Hemisphere) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if !hemisphere.IsValid() {
		hemisphere = domain.HemisphereSouth
	}
	if date.IsZero() {
		date = domain.Today()
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		keymap:         km,
		reportView:     report.NewView(s, km),
		attributesView: attributes.NewView(s),
		statusBar:      status.NewBar(s, km),
		date:           domain.CivilDate(date),
		hemisphere:     hemisphere,
		now:            domain.Today,
		currentView:    messages.ViewReport,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// The report is loaded once the first window size arrives.
func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle("Aurora Sagrada")
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		if a.contentWidth() != a.styledWidth {
			return a, a.loadReport()
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.ReportRequested:
		a.date = domain.CivilDate(msg.Date)
		if msg.Hemisphere.IsValid() {
			a.hemisphere = msg.Hemisphere
		}
		return a, a.loadReport()

	case messages.ReportLoaded:
		a.applyReport(msg)
		return a, nil

	case messages.ViewChanged:
		a.setView(msg.View)
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(msg.Err.Error())
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	if a.currentView == messages.ViewReport {
		var cmd tea.Cmd
		a.reportView, cmd = a.reportView.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keymap.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keymap.Help):
		if a.currentView == messages.ViewHelp {
			a.setView(a.previousView)
		} else {
			a.setView(messages.ViewHelp)
		}
		return a, nil

	case key.Matches(msg, a.keymap.Back):
		a.setView(messages.ViewReport)
		return a, nil

	case key.Matches(msg, a.keymap.Toggle):
		if a.currentView == messages.ViewAttributes {
			a.setView(messages.ViewReport)
		} else {
			a.setView(messages.ViewAttributes)
		}
		return a, nil

	case key.Matches(msg, a.keymap.PrevDay):
		a.date = a.date.AddDate(0, 0, -1)
		return a, a.loadReport()

	case key.Matches(msg, a.keymap.NextDay):
		a.date = a.date.AddDate(0, 0, 1)
		return a, a.loadReport()

	case key.Matches(msg, a.keymap.Today):
		a.date = domain.CivilDate(a.now())
		return a, a.loadReport()

	case key.Matches(msg, a.keymap.Hemisphere):
		if a.hemisphere == domain.HemisphereNorth {
			a.hemisphere = domain.HemisphereSouth
		} else {
			a.hemisphere = domain.HemisphereNorth
		}
		return a, a.loadReport()
	}

	if a.currentView != messages.ViewReport {
		return a, nil
	}
	var cmd tea.Cmd
	a.reportView, cmd = a.reportView.Update(msg)
	a.statusBar.SetPosition(a.reportView.ScrollPercent())
	return a, cmd
}

// loadReport returns a command that assembles and styles the current report.
// The request is captured now so a later navigation can discard the result.
func (a *App) loadReport() tea.Cmd {
	date, h, width := a.date, a.hemisphere, a.contentWidth()
	a.styledWidth = width
	a.reportView.SetLoading()
	a.statusBar.SetState(status.StateLoading)

	ports := a.ports
	return func() tea.Msg {
		attrs := ports.Report.Attributes(date, h)
		doc := ports.Report.Assemble(date, h)
		text, err := ports.Styler.Style(doc, width)
		return messages.ReportLoaded{
			Date:       date,
			Hemisphere: h,
			Attributes: attrs,
			Document:   doc,
			Text:       text,
			Err:        err,
		}
	}
}

func (a *App) applyReport(msg messages.ReportLoaded) {
	if !msg.Date.Equal(a.date) || msg.Hemisphere != a.hemisphere {
		return
	}

	if msg.Err != nil {
		a.err = msg.Err
		a.reportView.SetError(msg.Err)
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(msg.Err.Error())
		return
	}

	a.err = nil
	label := fmt.Sprintf("%s · %s", msg.Date.Format(domain.DateLayout), msg.Hemisphere)
	a.reportView.SetReport("Aurora Sagrada · "+label, msg.Text)
	a.attributesView.SetAttributes(msg.Attributes)
	a.statusBar.SetMessage(label)
	a.statusBar.SetPosition(0)
	if a.currentView == messages.ViewHelp {
		a.statusBar.SetState(status.StateHelp)
	} else {
		a.statusBar.SetState(status.StateReady)
	}
}

func (a *App) setView(v messages.ViewType) {
	if v == messages.ViewHelp && a.currentView != messages.ViewHelp {
		a.previousView = a.currentView
	}
	a.currentView = v

	switch {
	case v == messages.ViewHelp:
		a.statusBar.SetState(status.StateHelp)
	case a.err != nil:
		a.statusBar.SetState(status.StateError)
	default:
		a.statusBar.SetState(status.StateReady)
	}
}

// contentWidth is the wrap width handed to the styler.
func (a *App) contentWidth() int {
	if a.width <= 0 {
		return 80
	}
	return a.width
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewAttributes:
		body = a.attributesView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.reportView.View()
	}

	body = lipgloss.NewStyle().
		Height(max(a.height-statusLines, 1)).
		MaxHeight(max(a.height-statusLines, 1)).
		Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, body, a.statusBar.View())
}

func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")

	titles := []string{"Scrolling", "Days", "Views"}
	for i, group := range a.keymap.FullHelp() {
		b.WriteString(a.styles.Subtitle.Render(titles[i]))
		b.WriteString("\n")
		for _, binding := range group {
			h := binding.Help()
			b.WriteString("  ")
			b.WriteString(a.styles.Label.Width(12).Render(h.Key))
			b.WriteString(a.styles.Normal.Render(h.Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Help.Render("[esc] back to report"))
	return b.String()
}

// Run starts the TUI in the alternate screen.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Date returns the date being previewed.
func (a *App) Date() time.Time {
	return a.date
}

// Hemisphere returns the hemisphere rule in use.
func (a *App) Hemisphere() domain.Hemisphere {
	return a.hemisphere
}

// CurrentView returns the currently active view.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the terminal size is known.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions and resizes the views.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	body := max(height-statusLines, 1)
	a.reportView.SetSize(width, body)
	a.attributesView.SetSize(width, body)
	a.statusBar.SetWidth(width)
}
