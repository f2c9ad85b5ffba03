// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"time"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
)

// ReportRequested asks the app to load the report for a date.
type ReportRequested struct {
	Date       time.Time
	Hemisphere domain.Hemisphere
}

// ReportLoaded carries an assembled and styled report back to the model.
type ReportLoaded struct {
	Date       time.Time
	Hemisphere domain.Hemisphere
	Attributes domain.Attributes
	Document   *domain.ReportDocument
	Text       string
	Err        error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewReport is the scrollable report pager.
	ViewReport ViewType = iota
	// ViewAttributes shows the calculated attributes and theme scores.
	ViewAttributes
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewReport:
		return "report"
	case ViewAttributes:
		return "attributes"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
