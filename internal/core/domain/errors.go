package domain

import "errors"

// Domain errors represent structural failures that abort a report.
// Content problems (missing records, bad data files) never produce
// these; they resolve to documented defaults instead.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDate indicates a date string that is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")

	// ErrUnsupportedFormat indicates an unknown output format.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrInvalidHemisphere indicates an unknown hemisphere name.
	ErrInvalidHemisphere = errors.New("invalid hemisphere")

	// ErrRenderFailed indicates the rendering collaborator failed.
	// No artifact is left behind when this is returned.
	ErrRenderFailed = errors.New("render failed")

	// ErrNotImplemented indicates a required collaborator was not wired.
	ErrNotImplemented = errors.New("not implemented")
)
