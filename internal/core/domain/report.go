package domain

import "time"

// BlockKind identifies a renderable block.
type BlockKind string

// Block kinds understood by every renderer.
const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockTable     BlockKind = "table"
	BlockSpacer    BlockKind = "spacer"
	BlockRule      BlockKind = "rule"
)

// Table is a grid of text cells with an optional header row.
type Table struct {
	Header []string   `json:"header,omitempty"`
	Rows   [][]string `json:"rows"`
}

// Block is the smallest renderable unit of a report.
type Block struct {
	Kind BlockKind `json:"kind"`

	// Style names the layout style used to render the block.
	Style StyleName `json:"style,omitempty"`

	// Label is rendered in bold ahead of Text ("Label: Text").
	Label string `json:"label,omitempty"`

	// Text is the block's body text.
	Text string `json:"text,omitempty"`

	// Bullet marks a list item.
	Bullet bool `json:"bullet,omitempty"`

	// Quoted marks text rendered between quotation marks.
	Quoted bool `json:"quoted,omitempty"`

	// Space is the height of a spacer in points.
	Space float64 `json:"space,omitempty"`

	// Table holds the cells of a table block.
	Table *Table `json:"table,omitempty"`
}

// Heading returns a heading block.
func Heading(style StyleName, text string) Block {
	return Block{Kind: BlockHeading, Style: style, Text: text}
}

// Paragraph returns a plain paragraph block.
func Paragraph(style StyleName, text string) Block {
	return Block{Kind: BlockParagraph, Style: style, Text: text}
}

// LabeledParagraph returns a paragraph with a bold label.
func LabeledParagraph(style StyleName, label, text string) Block {
	return Block{Kind: BlockParagraph, Style: style, Label: label, Text: text}
}

// BulletItem returns a list item paragraph.
func BulletItem(style StyleName, text string) Block {
	return Block{Kind: BlockParagraph, Style: style, Text: text, Bullet: true}
}

// Quote returns a quoted paragraph.
func Quote(style StyleName, text string) Block {
	return Block{Kind: BlockParagraph, Style: style, Text: text, Quoted: true}
}

// Spacer returns vertical whitespace of the given height in points.
func Spacer(points float64) Block {
	return Block{Kind: BlockSpacer, Space: points}
}

// Rule returns a decorative horizontal rule.
func Rule() Block {
	return Block{Kind: BlockRule, Style: StyleRule}
}

// TableBlock returns a table block.
func TableBlock(style StyleName, header []string, rows [][]string) Block {
	return Block{Kind: BlockTable, Style: style, Table: &Table{Header: header, Rows: rows}}
}

// SectionKind identifies one of the fixed report sections.
type SectionKind string

// Report sections in document order.
const (
	SectionHeader          SectionKind = "header"
	SectionGeneralInfo     SectionKind = "general_info"
	SectionLunarMansion    SectionKind = "lunar_mansion"
	SectionGoddess         SectionKind = "goddess"
	SectionLunarPhase      SectionKind = "lunar_phase"
	SectionElections       SectionKind = "elections"
	SectionCorrespondences SectionKind = "correspondences"
	SectionFooter          SectionKind = "footer"
)

// SectionOrder returns the fixed order of report sections.
func SectionOrder() []SectionKind {
	return []SectionKind{
		SectionHeader,
		SectionGeneralInfo,
		SectionLunarMansion,
		SectionGoddess,
		SectionLunarPhase,
		SectionElections,
		SectionCorrespondences,
		SectionFooter,
	}
}

// Section is an ordered run of blocks.
type Section struct {
	Kind   SectionKind `json:"kind"`
	Blocks []Block     `json:"blocks"`
}

// ReportDocument is the assembled report for one date.
// It is built once and never mutated after assembly.
type ReportDocument struct {
	// ID is derived from the date, so the same date always has the same ID.
	ID string `json:"id"`

	Date       time.Time  `json:"date"`
	Title      string     `json:"title"`
	Hemisphere Hemisphere `json:"hemisphere"`
	Sections   []Section  `json:"sections"`
}

// Blocks returns every block of every section in document order.
func (d *ReportDocument) Blocks() []Block {
	var n int
	for _, s := range d.Sections {
		n += len(s.Blocks)
	}
	blocks := make([]Block, 0, n)
	for _, s := range d.Sections {
		blocks = append(blocks, s.Blocks...)
	}
	return blocks
}

// Section returns the section of the given kind, if present.
func (d *ReportDocument) Section(kind SectionKind) (Section, bool) {
	for _, s := range d.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

// ReportRequest asks for one rendered report.
type ReportRequest struct {
	// Date is the report day. Only the calendar day is used.
	Date time.Time

	// OutputPath overrides the default artifact path when set.
	OutputPath string

	// Format overrides Settings.Format when set.
	Format Format

	// Hemisphere overrides Settings.Hemisphere when set.
	Hemisphere Hemisphere
}

// ReportResult describes a generated artifact.
type ReportResult struct {
	Path     string
	Format   Format
	Document *ReportDocument
}
