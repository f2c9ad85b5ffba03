// Package render groups the report renderers. Each subpackage turns a
// domain.ReportDocument into one output format:
//
//   - pdf: paginated A4 document (go-pdf/fpdf)
//   - markdown: CommonMark text
//   - terminal: markdown styled for ANSI terminals (glamour)
//   - jsondoc: the block tree as indented JSON
package render
