// Package pdf renders reports as paginated PDF documents.
//
// Text is set in the PDF core fonts, so only characters in the
// Windows-1252 code page are representable; others are dropped by the
// translator.
package pdf

import (
	"context"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
	"github.com/custodia-labs/aurora-cli/internal/core/ports/driven"
)

const (
	author  = "Aurora Sagrada"
	subject = "Astromagical Guide"

	footerOffset = -15.0
	footerHeight = 10.0
	bulletIndent = 5.0
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Renderer writes reports as PDF.
type Renderer struct{}

// NewRenderer creates a PDF renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Format returns domain.FormatPDF.
func (r *Renderer) Format() domain.Format { return domain.FormatPDF }

// Extension returns "pdf".
func (r *Renderer) Extension() string { return "pdf" }

// Render writes doc as a PDF. Metadata dates are set to the report day,
// so the same document always produces the same bytes.
func (r *Renderer) Render(ctx context.Context, doc *domain.ReportDocument, layout domain.Layout, w io.Writer) error {
	p := newPage(doc, layout)

	for _, section := range doc.Sections {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, b := range section.Blocks {
			p.block(b)
		}
		if err := p.pdf.Error(); err != nil {
			return fmt.Errorf("section %s: %w", section.Kind, err)
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return p.pdf.Output(w)
}

// page wraps an fpdf document with the layout it is set in.
type page struct {
	pdf    *fpdf.Fpdf
	layout domain.Layout
	tr     func(string) string
}

func newPage(doc *domain.ReportDocument, layout domain.Layout) *page {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: fpdf.OrientationPortrait,
		UnitStr:        fpdf.UnitMillimeter,
		Size:           fpdf.SizeType{Wd: layout.Page.Width, Ht: layout.Page.Height},
	})
	p := &page{
		pdf:    pdf,
		layout: layout,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
	}

	m := layout.Margins
	pdf.SetMargins(m.Left, m.Top, m.Right)
	pdf.SetAutoPageBreak(true, m.Bottom)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(doc.Date)
	pdf.SetModificationDate(doc.Date)
	pdf.SetTitle(doc.Title+" "+doc.Date.Format(domain.DateLayout), false)
	pdf.SetAuthor(author, false)
	pdf.SetSubject(subject, false)
	pdf.SetKeywords(doc.ID, false)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(p.footer)
	pdf.AddPage()
	return p
}

func (p *page) footer() {
	s := p.layout.Style(domain.StyleCaption)
	p.pdf.SetY(footerOffset)
	p.setFont(s)
	text := fmt.Sprintf("%s • %d/{nb}", author, p.pdf.PageNo())
	p.pdf.CellFormat(0, footerHeight, p.tr(text), "", 0, "C", false, 0, "")
}

func (p *page) block(b domain.Block) {
	switch b.Kind {
	case domain.BlockHeading:
		p.heading(b)
	case domain.BlockParagraph:
		p.paragraph(b)
	case domain.BlockTable:
		p.table(b)
	case domain.BlockSpacer:
		p.pdf.Ln(p.pt(b.Space))
	case domain.BlockRule:
		p.rule()
	}
}

func (p *page) heading(b domain.Block) {
	s := p.layout.Style(b.Style)
	if s.SpaceBefore > 0 && p.pdf.GetY() > p.layout.Margins.Top {
		p.pdf.Ln(p.pt(s.SpaceBefore))
	}
	p.setFont(s)
	p.pdf.MultiCell(0, p.pt(s.LineHeight()), p.tr(b.Text), "", align(s.Align), false)
	p.pdf.Ln(p.pt(s.SpaceAfter))
}

func (p *page) paragraph(b domain.Block) {
	s := p.layout.Style(b.Style)
	lineHeight := p.pt(s.LineHeight())
	left := p.layout.Margins.Left
	width := p.layout.ContentWidth()

	p.setFont(s)
	switch {
	case b.Label != "":
		p.pdf.SetX(left + s.Indent)
		p.setStyle(s, "B")
		p.pdf.Write(lineHeight, p.tr(b.Label+": "))
		p.setFont(s)
		p.pdf.Write(lineHeight, p.tr(b.Text))
		p.pdf.Ln(lineHeight)

	case b.Bullet:
		p.pdf.SetX(left + s.Indent + bulletIndent)
		p.pdf.MultiCell(width-s.Indent-bulletIndent, lineHeight, p.tr("• "+b.Text), "", "L", false)

	case b.Quoted:
		p.pdf.SetX(left + s.Indent)
		p.pdf.MultiCell(width-2*s.Indent, lineHeight, p.tr("“"+b.Text+"”"), "", align(s.Align), false)

	default:
		p.pdf.SetX(left + s.Indent)
		p.pdf.MultiCell(width-2*s.Indent, lineHeight, p.tr(b.Text), "", align(s.Align), false)
	}

	if !b.Bullet {
		p.pdf.Ln(p.pt(s.SpaceAfter))
	}
}

func (p *page) table(b domain.Block) {
	if b.Table == nil || len(b.Table.Rows) == 0 {
		return
	}
	ts := p.layout.TableStyle(b.Style)
	widths := p.columnWidths(ts, columnCount(b.Table))
	rowHeight := p.pt(ts.Size*1.2) + 2*ts.Padding

	var total float64
	for _, w := range widths {
		total += w
	}
	x := p.layout.Margins.Left + (p.layout.ContentWidth()-total)/2

	border := ""
	if ts.Grid {
		border = "1"
		r, g, bl := ts.GridColor.RGB()
		p.pdf.SetDrawColor(r, g, bl)
		p.pdf.SetLineWidth(ts.GridWidth)
	}
	p.pdf.SetCellMargin(ts.Padding)

	if len(b.Table.Header) > 0 {
		fill := ts.HeaderFill != ""
		if fill {
			r, g, bl := ts.HeaderFill.RGB()
			p.pdf.SetFillColor(r, g, bl)
		}
		p.pdf.SetFont(ts.Font, "B", ts.Size)
		p.setColor(ts.HeaderColor)
		p.pdf.SetX(x)
		for i, cell := range b.Table.Header {
			p.pdf.CellFormat(widths[i], rowHeight, p.tr(cell), border, 0, cellAlign(ts, i, len(widths)), fill, 0, "")
		}
		p.pdf.Ln(rowHeight)
	}

	for _, row := range b.Table.Rows {
		p.pdf.SetX(x)
		for i := range widths {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			if i == 0 {
				p.pdf.SetFont(ts.Font, "B", ts.Size)
				p.setColor(ts.LabelColor)
			} else {
				p.pdf.SetFont(ts.Font, "", ts.Size)
				p.setColor(ts.TextColor)
			}
			p.pdf.CellFormat(widths[i], rowHeight, p.tr(cell), border, 0, cellAlign(ts, i, len(widths)), false, 0, "")
		}
		p.pdf.Ln(rowHeight)
	}
	p.pdf.SetCellMargin(0)
}

// columnWidths returns n widths, scaled down to fit the content width.
// Missing widths share the remaining space equally.
func (p *page) columnWidths(ts domain.TableStyle, n int) []float64 {
	content := p.layout.ContentWidth()
	widths := make([]float64, n)

	var used float64
	var missing int
	for i := range widths {
		if i < len(ts.ColumnWidths) && ts.ColumnWidths[i] > 0 {
			widths[i] = ts.ColumnWidths[i]
			used += widths[i]
		} else {
			missing++
		}
	}
	if missing > 0 {
		share := max(content-used, 0) / float64(missing)
		for i := range widths {
			if widths[i] == 0 {
				widths[i] = share
			}
		}
		used = content
	}
	if used > content {
		scale := content / used
		for i := range widths {
			widths[i] *= scale
		}
	}
	return widths
}

func (p *page) rule() {
	rs := p.layout.Rule
	y := p.pdf.GetY()
	r, g, b := rs.Color.RGB()
	p.pdf.SetDrawColor(r, g, b)
	p.pdf.SetLineWidth(rs.Thickness)
	p.pdf.Line(p.layout.Margins.Left, y, p.layout.Page.Width-p.layout.Margins.Right, y)
	p.pdf.Ln(rs.Thickness)
}

func (p *page) setFont(s domain.Style) {
	var style string
	if s.Bold {
		style += "B"
	}
	if s.Italic {
		style += "I"
	}
	p.setStyle(s, style)
}

func (p *page) setStyle(s domain.Style, fontStyle string) {
	p.pdf.SetFont(s.Font, fontStyle, s.Size)
	p.setColor(s.Color)
}

func (p *page) setColor(c domain.Color) {
	r, g, b := c.RGB()
	p.pdf.SetTextColor(r, g, b)
}

// pt converts points to the document unit.
func (p *page) pt(points float64) float64 {
	return p.pdf.PointConvert(points)
}

func columnCount(t *domain.Table) int {
	n := len(t.Header)
	for _, row := range t.Rows {
		n = max(n, len(row))
	}
	return n
}

func align(a domain.Align) string {
	switch a {
	case domain.AlignCenter:
		return "C"
	case domain.AlignRight:
		return "R"
	case domain.AlignJustify:
		return "J"
	default:
		return "L"
	}
}

func cellAlign(ts domain.TableStyle, i, n int) string {
	if ts.CenterLast && i == n-1 {
		return "C"
	}
	return "L"
}
