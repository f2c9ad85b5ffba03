package domain

import (
	"strconv"
	"strings"
)

// Color is a hex colour of the form #RRGGBB.
type Color string

// Report palette.
const (
	ColorWine      Color = "#661D48"
	ColorNightBlue Color = "#0B1836"
	ColorGold      Color = "#DAA520"
	ColorParchment Color = "#F2EAFF"
	ColorSage      Color = "#B2D1B1"
	ColorBlack     Color = "#000000"
	ColorWhite     Color = "#FFFFFF"
)

// RGB returns the colour's channels. Malformed colours yield black.
func (c Color) RGB() (r, g, b int) {
	s := strings.TrimPrefix(string(c), "#")
	if len(s) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}

// Align is horizontal text alignment.
type Align string

// Alignments.
const (
	AlignLeft    Align = "left"
	AlignCenter  Align = "center"
	AlignRight   Align = "right"
	AlignJustify Align = "justify"
)

// StyleName names a paragraph, table or rule style in a Layout.
type StyleName string

// Named styles.
const (
	StyleTitle          StyleName = "title"
	StyleHeading1       StyleName = "heading1"
	StyleHeading2       StyleName = "heading2"
	StyleBody           StyleName = "body"
	StyleQuote          StyleName = "quote"
	StyleCaption        StyleName = "caption"
	StyleRule           StyleName = "rule"
	StyleInfoTable      StyleName = "info_table"
	StyleElectionsTable StyleName = "elections_table"
)

// Style describes how a paragraph or heading is set.
// Sizes and spacing are in points; Indent is in millimetres.
type Style struct {
	Font        string  `json:"font"`
	Bold        bool    `json:"bold,omitempty"`
	Italic      bool    `json:"italic,omitempty"`
	Size        float64 `json:"size"`
	Color       Color   `json:"color"`
	Align       Align   `json:"align"`
	SpaceBefore float64 `json:"space_before,omitempty"`
	SpaceAfter  float64 `json:"space_after,omitempty"`
	Leading     float64 `json:"leading,omitempty"`
	Indent      float64 `json:"indent,omitempty"`
}

// LineHeight returns the leading, or 1.2 times the size when unset.
func (s Style) LineHeight() float64 {
	if s.Leading > 0 {
		return s.Leading
	}
	return s.Size * 1.2
}

// TableStyle describes how a table is set. ColumnWidths are in millimetres.
type TableStyle struct {
	Font         string    `json:"font"`
	Size         float64   `json:"size"`
	HeaderColor  Color     `json:"header_color"`
	HeaderFill   Color     `json:"header_fill,omitempty"`
	LabelColor   Color     `json:"label_color"`
	TextColor    Color     `json:"text_color"`
	Grid         bool      `json:"grid,omitempty"`
	GridColor    Color     `json:"grid_color,omitempty"`
	GridWidth    float64   `json:"grid_width,omitempty"`
	Padding      float64   `json:"padding"`
	ColumnWidths []float64 `json:"column_widths"`
	CenterLast   bool      `json:"center_last,omitempty"`
}

// RuleStyle describes a decorative horizontal rule.
type RuleStyle struct {
	Color     Color   `json:"color"`
	Thickness float64 `json:"thickness"`
}

// PageSize is a page format in millimetres.
type PageSize struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PageA4 is ISO A4 portrait.
var PageA4 = PageSize{Name: "A4", Width: 210, Height: 297}

// Margins are page margins in millimetres.
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Layout is the page-layout configuration handed to renderers.
type Layout struct {
	Page    PageSize                 `json:"page"`
	Margins Margins                  `json:"margins"`
	Styles  map[StyleName]Style      `json:"styles"`
	Tables  map[StyleName]TableStyle `json:"tables"`
	Rule    RuleStyle                `json:"rule"`
}

// Style returns the named paragraph style, falling back to the body style.
func (l Layout) Style(name StyleName) Style {
	if s, ok := l.Styles[name]; ok {
		return s
	}
	return l.Styles[StyleBody]
}

// TableStyle returns the named table style, falling back to the info table.
func (l Layout) TableStyle(name StyleName) TableStyle {
	if s, ok := l.Tables[name]; ok {
		return s
	}
	return l.Tables[StyleInfoTable]
}

// ContentWidth returns the printable width in millimetres.
func (l Layout) ContentWidth() float64 {
	return l.Page.Width - l.Margins.Left - l.Margins.Right
}

// DefaultLayout returns the A4 layout with the Aurora palette.
func DefaultLayout() Layout {
	return Layout{
		Page:    PageA4,
		Margins: Margins{Top: 20, Right: 20, Bottom: 20, Left: 20},
		Styles: map[StyleName]Style{
			StyleTitle: {
				Font: "Helvetica", Bold: true, Size: 24,
				Color: ColorGold, Align: AlignCenter, SpaceAfter: 20,
			},
			StyleHeading1: {
				Font: "Helvetica", Bold: true, Size: 18,
				Color: ColorWine, Align: AlignLeft, SpaceBefore: 20, SpaceAfter: 12,
			},
			StyleHeading2: {
				Font: "Helvetica", Bold: true, Size: 14,
				Color: ColorNightBlue, Align: AlignLeft, SpaceBefore: 15, SpaceAfter: 8,
			},
			StyleBody: {
				Font: "Helvetica", Size: 11,
				Color: ColorNightBlue, Align: AlignJustify, SpaceAfter: 8, Leading: 14,
			},
			StyleQuote: {
				Font: "Helvetica", Italic: true, Size: 10,
				Color: ColorWine, Align: AlignCenter, SpaceAfter: 12, Leading: 13, Indent: 7,
			},
			StyleCaption: {
				Font: "Helvetica", Size: 9,
				Color: ColorSage, Align: AlignCenter, SpaceAfter: 6,
			},
		},
		Tables: map[StyleName]TableStyle{
			StyleInfoTable: {
				Font: "Helvetica", Size: 11,
				HeaderColor: ColorWine, LabelColor: ColorWine, TextColor: ColorNightBlue,
				Padding: 1, ColumnWidths: []float64{40, 100},
			},
			StyleElectionsTable: {
				Font: "Helvetica", Size: 10,
				HeaderColor: ColorGold, HeaderFill: ColorParchment,
				LabelColor: ColorNightBlue, TextColor: ColorNightBlue,
				Grid: true, GridColor: ColorSage, GridWidth: 0.18,
				Padding: 1.5, ColumnWidths: []float64{40, 40, 20}, CenterLast: true,
			},
		},
		Rule: RuleStyle{Color: ColorGold, Thickness: 0.35},
	}
}
