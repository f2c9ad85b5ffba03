package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
	"github.com/custodia-labs/aurora-cli/internal/core/services"
)

func TestNewPorts(t *testing.T) {
	svc := services.NewReportService(nil, nil, nil, domain.DefaultSettings())
	styler := StylerFunc(func(*domain.ReportDocument, int) (string, error) { return "", nil })

	p := NewPorts(svc, styler)

	require.NotNil(t, p)
	assert.NoError(t, p.Validate())
}

func TestPorts_Validate(t *testing.T) {
	svc := services.NewReportService(nil, nil, nil, domain.DefaultSettings())

	var nilPorts *Ports
	assert.ErrorIs(t, nilPorts.Validate(), ErrInvalidPorts)
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingReportService)
	assert.ErrorIs(t, (&Ports{Report: svc}).Validate(), ErrMissingStyler)
}

func TestStylerFunc(t *testing.T) {
	var gotWidth int
	styler := StylerFunc(func(doc *domain.ReportDocument, width int) (string, error) {
		gotWidth = width
		return doc.Title, nil
	})

	out, err := styler.Style(&domain.ReportDocument{Title: "AURORA SAGRADA"}, 72)

	require.NoError(t, err)
	assert.Equal(t, "AURORA SAGRADA", out)
	assert.Equal(t, 72, gotWidth)
}
