package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func allErrors() []error {
	return []error{
		ErrInvalidInput,
		ErrInvalidDate,
		ErrUnsupportedFormat,
		ErrInvalidHemisphere,
		ErrRenderFailed,
		ErrNotImplemented,
	}
}

func TestErrors_Messages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrInvalidInput, "invalid input"},
		{ErrInvalidDate, "invalid date"},
		{ErrUnsupportedFormat, "unsupported format"},
		{ErrInvalidHemisphere, "invalid hemisphere"},
		{ErrRenderFailed, "render failed"},
		{ErrNotImplemented, "not implemented"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.want)
		})
	}
}

// TestErrors_Uniqueness tests that all errors are distinct
func TestErrors_Uniqueness(t *testing.T) {
	errs := allErrors()
	for i, err1 := range errs {
		for j, err2 := range errs {
			if i != j {
				assert.False(t, errors.Is(err1, err2),
					"Error %v should not match error %v", err1, err2)
			}
		}
	}
}

func TestErrors_WithWrapping(t *testing.T) {
	cause := errors.New("font not found")
	wrapped := fmt.Errorf("%w: %s: %w", ErrRenderFailed, FormatPDF, cause)

	assert.ErrorIs(t, wrapped, ErrRenderFailed)
	assert.ErrorIs(t, wrapped, cause)
	assert.NotErrorIs(t, wrapped, ErrInvalidDate)
	assert.Equal(t, "render failed: pdf: font not found", wrapped.Error())
}
