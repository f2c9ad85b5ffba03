package tui

import "errors"

// ErrMissingReportService is returned when the report service is not provided.
var ErrMissingReportService = errors.New("tui: report service is required")

// ErrMissingStyler is returned when no styler is provided.
var ErrMissingStyler = errors.New("tui: styler is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
