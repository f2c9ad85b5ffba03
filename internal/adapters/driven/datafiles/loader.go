package datafiles

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
	"github.com/custodia-labs/aurora-cli/internal/core/ports/driven"
	"github.com/custodia-labs/aurora-cli/internal/logger"
)

// Base names of the data files, without extension.
const (
	MansionsBase  = "mansoes-lunares-expandido"
	GoddessesBase = "deusas"
)

var (
	// ErrNotFound is returned when no file exists for a table.
	ErrNotFound = errors.New("data file not found")

	// ErrSchema is returned when a file decodes but its content is invalid.
	ErrSchema = errors.New("data file schema mismatch")
)

// extensions are tried in order; the first existing file wins.
var extensions = []string{".json", ".yaml", ".yml"}

// Ensure Loader implements the interface.
var _ driven.TableSource = (*Loader)(nil)

// Loader reads lookup tables from a directory.
// It reads the files on every call to Tables; wrap it in a
// memory.TableCache to load once per process.
type Loader struct {
	dir string
}

// NewLoader creates a loader for dir. An empty dir loads nothing.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Tables loads both tables. Failures are logged and leave the
// failing table empty.
func (l *Loader) Tables() domain.Tables {
	tables := domain.EmptyTables()
	if l.dir == "" {
		logger.Debug("no data directory configured, using built-in content")
		return tables
	}

	if mansions, err := l.Mansions(); err != nil {
		logFailure(MansionsBase, err)
	} else {
		tables.Mansions = mansions
		logger.Debug("loaded %d lunar mansions from %s", len(mansions), l.dir)
	}

	if goddesses, err := l.Goddesses(); err != nil {
		logFailure(GoddessesBase, err)
	} else {
		tables.Goddesses = goddesses
		logger.Debug("loaded %d goddesses from %s", len(goddesses), l.dir)
	}

	return tables
}

// Mansions loads and validates the lunar mansion table.
func (l *Loader) Mansions() (map[int]domain.LunarMansionRecord, error) {
	var f mansionFile
	path, err := l.decode(MansionsBase, &f)
	if err != nil {
		return nil, err
	}
	records, err := f.records()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Goddesses loads and validates the goddess table.
func (l *Loader) Goddesses() (map[int]domain.GoddessRecord, error) {
	var f goddessFile
	path, err := l.decode(GoddessesBase, &f)
	if err != nil {
		return nil, err
	}
	records, err := f.records()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Path returns the file used for a table, or ErrNotFound.
func (l *Loader) Path(base string) (string, error) {
	for _, ext := range extensions {
		path := filepath.Join(l.dir, base+ext)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
	}
	return "", fmt.Errorf("%w: %s{%s} in %s", ErrNotFound, base, ".json,.yaml,.yml", l.dir)
}

func (l *Loader) decode(base string, v any) (string, error) {
	path, err := l.Path(base)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return path, fmt.Errorf("read %s: %w", path, err)
	}

	switch filepath.Ext(path) {
	case ".json":
		err = json.Unmarshal(data, v)
	default:
		err = yaml.Unmarshal(data, v)
	}
	if err != nil {
		return path, fmt.Errorf("%s: %w: %w", path, ErrSchema, err)
	}
	return path, nil
}

func logFailure(base string, err error) {
	if errors.Is(err, ErrNotFound) {
		logger.Warn("%s table not loaded: %v", base, err)
		return
	}
	logger.Warn("%s table ignored: %v", base, err)
}
