// Package markdown renders reports as Markdown.
package markdown

import (
	"context"
	"io"
	"strings"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
	"github.com/custodia-labs/aurora-cli/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Renderer writes reports as Markdown.
type Renderer struct{}

// NewRenderer creates a Markdown renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Format returns domain.FormatMarkdown.
func (r *Renderer) Format() domain.Format { return domain.FormatMarkdown }

// Extension returns "md".
func (r *Renderer) Extension() string { return "md" }

// Render writes doc as Markdown. The layout is not used; Markdown
// carries structure only.
func (r *Renderer) Render(ctx context.Context, doc *domain.ReportDocument, _ domain.Layout, w io.Writer) error {
	text := Transform(doc)
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := io.WriteString(w, text)
	return err
}

// Transform converts a report document to a Markdown string.
func Transform(doc *domain.ReportDocument) string {
	var sb strings.Builder
	var prevBullet bool

	for _, b := range doc.Blocks() {
		if b.Kind == domain.BlockSpacer {
			continue
		}
		if prevBullet && !b.Bullet {
			sb.WriteString("\n")
		}
		writeBlock(&sb, b)
		prevBullet = b.Bullet
	}
	if prevBullet {
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// inlineEscaper escapes the characters that would open emphasis or code
// spans inside text taken from the data files.
var inlineEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
)

// cellEscaper also escapes the pipe table delimiter.
var cellEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"|", `\|`,
)

// escape escapes Markdown inline metacharacters in s.
func escape(s string) string {
	return inlineEscaper.Replace(s)
}

func writeBlock(sb *strings.Builder, b domain.Block) {
	switch b.Kind {
	case domain.BlockHeading:
		sb.WriteString(headingPrefix(b.Style))
		sb.WriteString(escape(b.Text))
		sb.WriteString("\n\n")

	case domain.BlockRule:
		sb.WriteString("---\n\n")

	case domain.BlockTable:
		writeTable(sb, b.Table)

	case domain.BlockParagraph:
		writeParagraph(sb, b)
	}
}

func headingPrefix(style domain.StyleName) string {
	switch style {
	case domain.StyleTitle:
		return "# "
	case domain.StyleHeading1:
		return "## "
	default:
		return "### "
	}
}

func writeParagraph(sb *strings.Builder, b domain.Block) {
	text := escape(b.Text)
	if b.Label != "" {
		text = "**" + escape(b.Label) + ":** " + text
	}

	switch {
	case b.Bullet:
		sb.WriteString("- ")
		sb.WriteString(text)
		sb.WriteString("\n")
		return
	case b.Quoted:
		sb.WriteString("> *")
		sb.WriteString(text)
		sb.WriteString("*")
	case b.Style == domain.StyleCaption:
		sb.WriteString("*")
		sb.WriteString(text)
		sb.WriteString("*")
	default:
		sb.WriteString(text)
	}
	sb.WriteString("\n\n")
}

// writeTable writes a pipe table. Tables without a header row are
// written as a list of bold labels, since Markdown tables need one.
func writeTable(sb *strings.Builder, t *domain.Table) {
	if t == nil || len(t.Rows) == 0 {
		return
	}

	if len(t.Header) == 0 {
		for _, row := range t.Rows {
			sb.WriteString("- ")
			for i, cell := range row {
				switch {
				case i == 0:
					sb.WriteString("**" + escape(cell) + "**")
				default:
					sb.WriteString(" " + escape(cell))
				}
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
		return
	}

	writeRow(sb, t.Header)
	sb.WriteString("|")
	for range t.Header {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")
	for _, row := range t.Rows {
		writeRow(sb, row)
	}
	sb.WriteString("\n")
}

func writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString("|")
	for _, c := range cells {
		sb.WriteString(" ")
		sb.WriteString(cellEscaper.Replace(c))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}
