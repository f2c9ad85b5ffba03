package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewCmd_PrintsWhenNotATerminal(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "preview", "--date", "2024-03-20")

	require.NoError(t, err)
	assert.Contains(t, out, "AURORA SAGRADA")
	assert.Contains(t, out, "Lunar Mansion")
}

func TestPreviewCmd_NoStyler(t *testing.T) {
	setupServices(t)
	services.Styler = nil

	_, err := execute(t, "preview", "--date", "2024-03-20")

	assert.EqualError(t, err, "terminal styler not configured")
}

func TestPreviewCmd_InvalidHemisphere(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "preview", "--hemisphere", "east")

	assert.Error(t, err)
}

func TestIsTerminal_Buffer(t *testing.T) {
	assert.False(t, isTerminal(new(bytes.Buffer)))
}

func TestTerminalWidth_Default(t *testing.T) {
	assert.Equal(t, defaultWidth, terminalWidth(new(bytes.Buffer)))
}
