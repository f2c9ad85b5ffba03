package datafiles

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aurora-cli/internal/logger"
)

const mansionsJSON = `{
  "mansoes": {
    "1": {
      "nome": "Al-Sharatain",
      "espiritoToscano": "Geniel",
      "natureza": "Mixed",
      "significado": "The two signs; beginnings and journeys.",
      "usosMagicos": ["Safe travel", "Discord between enemies"],
      "correspondencias": {"ervas": ["Basil"], "pedras": ["Carnelian"], "cores": ["Red"]},
      "invocacao": "Geniel, open the road."
    },
    "24": {"nome": "Sa'd al-Su'ud", "espiritoToscano": "Abrine"}
  }
}`

const goddessesYAML = `deusas:
  "1":
    nome: Hestia
    elemento: Fire
    dominio: Hearth and home
    origem: Greek
  "80":
    nome: Ostara
    elemento: Air
    dominio: Dawn and renewal
    historia: Germanic goddess of spring.
    invocacao: Ostara, bring the light.
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoader_Tables_JSONAndYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "mansoes-lunares-expandido.json", mansionsJSON)
	writeFile(t, dir, "deusas.yaml", goddessesYAML)

	tables := NewLoader(dir).Tables()

	require.Len(t, tables.Mansions, 2)
	m := tables.Mansions[1]
	assert.Equal(t, 1, m.Number)
	assert.Equal(t, "Al-Sharatain", m.Name)
	assert.Equal(t, "Geniel", m.Spirit)
	assert.Equal(t, []string{"Safe travel", "Discord between enemies"}, m.MagicalUses)
	assert.Equal(t, []string{"Carnelian"}, m.Correspondences.Stones)
	assert.Equal(t, "Geniel, open the road.", m.Invocation)
	assert.Equal(t, "Abrine", tables.Mansions[24].Spirit)

	require.Len(t, tables.Goddesses, 2)
	assert.Equal(t, "Hestia", tables.Goddesses[1].Name)
	assert.Equal(t, "Greek", tables.Goddesses[1].Origin)
	assert.Equal(t, "Ostara, bring the light.", tables.Goddesses[80].Invocation)
}

func TestLoader_Tables_YMLExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "mansoes-lunares-expandido.yml", "mansoes:\n  \"3\":\n    nome: Al-Thurayya\n")

	tables := NewLoader(dir).Tables()

	assert.Equal(t, "Al-Thurayya", tables.Mansions[3].Name)
	assert.Empty(t, tables.Goddesses)
}

func TestLoader_Tables_JSONPreferredOverYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "deusas.json", `{"deusas": {"5": {"nome": "Freyja"}}}`)
	writeFile(t, dir, "deusas.yaml", goddessesYAML)

	tables := NewLoader(dir).Tables()

	assert.Len(t, tables.Goddesses, 1)
	assert.Equal(t, "Freyja", tables.Goddesses[5].Name)
}

func TestLoader_Tables_MissingFiles(t *testing.T) {
	tables := NewLoader(t.TempDir()).Tables()

	assert.NotNil(t, tables.Mansions)
	assert.NotNil(t, tables.Goddesses)
	assert.Empty(t, tables.Mansions)
	assert.Empty(t, tables.Goddesses)
}

func TestLoader_Tables_EmptyDir(t *testing.T) {
	tables := NewLoader("").Tables()

	assert.Empty(t, tables.Mansions)
	assert.Empty(t, tables.Goddesses)
}

func TestLoader_FailsClosed(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"malformed json", "mansoes-lunares-expandido.json", `{"mansoes": {"1": `},
		{"malformed yaml", "mansoes-lunares-expandido.yaml", "mansoes: [unterminated"},
		{"missing root object", "mansoes-lunares-expandido.json", `{"mansions": {"1": {"nome": "x"}}}`},
		{"key out of range", "mansoes-lunares-expandido.json", `{"mansoes": {"1": {"nome": "a"}, "29": {"nome": "b"}}}`},
		{"key not a number", "mansoes-lunares-expandido.json", `{"mansoes": {"first": {"nome": "a"}}}`},
		{"record without name", "mansoes-lunares-expandido.json", `{"mansoes": {"1": {"nome": "a"}, "2": {"natureza": "Good"}}}`},
		{"wrong field type", "mansoes-lunares-expandido.json", `{"mansoes": {"1": {"nome": "a", "usosMagicos": "not a list"}}}`},
		{"empty yaml", "mansoes-lunares-expandido.yaml", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, tt.file, tt.content)
			writeFile(t, dir, "deusas.json", `{"deusas": {"1": {"nome": "Brigid"}}}`)
			loader := NewLoader(dir)

			_, err := loader.Mansions()
			assert.ErrorIs(t, err, ErrSchema)

			tables := loader.Tables()
			assert.Empty(t, tables.Mansions)
			assert.Len(t, tables.Goddesses, 1, "other table is unaffected")
		})
	}
}

func TestLoader_Goddesses_DayOfYearRange(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "deusas.json", `{"deusas": {"366": {"nome": "Janus"}}}`)
	goddesses, err := NewLoader(dir).Goddesses()
	require.NoError(t, err)
	assert.Equal(t, "Janus", goddesses[366].Name)

	writeFile(t, dir, "deusas.json", `{"deusas": {"367": {"nome": "Nobody"}}}`)
	_, err = NewLoader(dir).Goddesses()
	assert.ErrorIs(t, err, ErrSchema)
}

func TestLoader_Path(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(dir)

	_, err := loader.Path(GoddessesBase)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "deusas.json"), 0o755))
	writeFile(t, dir, "deusas.yml", goddessesYAML)

	path, err := loader.Path(GoddessesBase)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "deusas.yml"), path)
}

func TestLoader_Tables_LogsWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)
	t.Cleanup(func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})

	dir := t.TempDir()
	writeFile(t, dir, "deusas.json", `not json`)
	NewLoader(dir).Tables()

	out := buf.String()
	assert.Contains(t, out, "[WARN] mansoes-lunares-expandido table not loaded")
	assert.Contains(t, out, "[WARN] deusas table ignored")
}
