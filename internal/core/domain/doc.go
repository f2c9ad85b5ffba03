// Package domain defines the core entities of the Aurora daily report.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Phase, Season, Hemisphere, Theme: calendar-derived enums
//   - LunarMansionRecord, GoddessRecord: looked-up content records
//   - Attributes, Content: calculator and lookup results for one date
//   - ReportDocument: the ordered section/block tree handed to renderers
//   - Layout: page size, margins and named styles used by renderers
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
