// Package jsondoc renders reports as JSON.
package jsondoc

import (
	"context"
	"encoding/json"
	"io"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
	"github.com/custodia-labs/aurora-cli/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Document is the JSON shape of a rendered report.
type Document struct {
	*domain.ReportDocument

	// Date is the report day as YYYY-MM-DD, replacing the timestamp.
	Date string `json:"date"`
}

// Renderer writes the report block tree as indented JSON.
type Renderer struct{}

// NewRenderer creates a JSON renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Format returns domain.FormatJSON.
func (r *Renderer) Format() domain.Format { return domain.FormatJSON }

// Extension returns "json".
func (r *Renderer) Extension() string { return "json" }

// Render writes doc as indented JSON.
func (r *Renderer) Render(ctx context.Context, doc *domain.ReportDocument, _ domain.Layout, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(Document{
		ReportDocument: doc,
		Date:           doc.Date.Format(domain.DateLayout),
	})
}
