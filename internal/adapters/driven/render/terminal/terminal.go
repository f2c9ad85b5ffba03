// Package terminal renders reports for ANSI terminals.
//
// The report is converted to Markdown and styled with glamour.
package terminal

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"github.com/custodia-labs/aurora-cli/internal/adapters/driven/render/markdown"
	"github.com/custodia-labs/aurora-cli/internal/core/domain"
	"github.com/custodia-labs/aurora-cli/internal/core/ports/driven"
)

// DefaultWidth is the word-wrap width used when none is set.
const DefaultWidth = 80

// Style names accepted by NewRenderer.
const (
	StyleAuto  = "auto"
	StyleDark  = styles.DarkStyle
	StyleLight = styles.LightStyle
	StylePlain = styles.NoTTYStyle
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Renderer writes reports as styled terminal text.
type Renderer struct {
	width int
	style string
}

// NewRenderer creates a terminal renderer that wraps at width columns.
// style is StyleAuto to detect the terminal background, or one of the
// glamour standard styles. Use StylePlain when output is not a TTY.
func NewRenderer(width int, style string) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if style == "" {
		style = StyleAuto
	}
	return &Renderer{width: width, style: style}
}

// Format returns domain.FormatTerminal.
func (r *Renderer) Format() domain.Format { return domain.FormatTerminal }

// Extension returns "txt".
func (r *Renderer) Extension() string { return "txt" }

// Width returns the wrap width.
func (r *Renderer) Width() int { return r.width }

// Render writes doc styled for the terminal.
func (r *Renderer) Render(ctx context.Context, doc *domain.ReportDocument, _ domain.Layout, w io.Writer) error {
	out, err := r.RenderString(doc)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// RenderString returns doc styled for the terminal.
func (r *Renderer) RenderString(doc *domain.ReportDocument) (string, error) {
	tr, err := r.termRenderer()
	if err != nil {
		return "", err
	}
	out, err := tr.Render(markdown.Transform(doc))
	if err != nil {
		return "", fmt.Errorf("style markdown: %w", err)
	}
	return out, nil
}

func (r *Renderer) termRenderer() (*glamour.TermRenderer, error) {
	styleOpt := glamour.WithStandardStyle(r.style)
	if r.style == StyleAuto {
		styleOpt = glamour.WithAutoStyle()
	}
	tr, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(r.width),
	)
	if err != nil {
		return nil, fmt.Errorf("create terminal renderer: %w", err)
	}
	return tr, nil
}
