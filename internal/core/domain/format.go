package domain

import (
	"fmt"
	"strings"
)

// Format is an output artifact format.
type Format string

// Supported formats.
const (
	FormatPDF      Format = "pdf"
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
	FormatTerminal Format = "term"
)

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatPDF, FormatMarkdown, FormatJSON, FormatTerminal}
}

// IsValid returns true if the format is supported.
func (f Format) IsValid() bool {
	switch f {
	case FormatPDF, FormatMarkdown, FormatJSON, FormatTerminal:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f Format) String() string {
	return string(f)
}

// ParseFormat converts user input into a Format.
// "markdown" is accepted as an alias of md, "terminal" of term.
func ParseFormat(s string) (Format, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "":
		return FormatPDF, nil
	case "markdown":
		return FormatMarkdown, nil
	case "terminal":
		return FormatTerminal, nil
	default:
		f := Format(v)
		if !f.IsValid() {
			return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
		}
		return f, nil
	}
}
