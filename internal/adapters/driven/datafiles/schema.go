package datafiles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
)

// MaxDayOfYear bounds the goddess table keys.
const MaxDayOfYear = 366

type mansionFile struct {
	Mansions map[string]mansionEntry `json:"mansoes" yaml:"mansoes"`
}

type mansionEntry struct {
	Name            string         `json:"nome" yaml:"nome"`
	Spirit          string         `json:"espiritoToscano" yaml:"espiritoToscano"`
	Nature          string         `json:"natureza" yaml:"natureza"`
	Meaning         string         `json:"significado" yaml:"significado"`
	MagicalUses     []string       `json:"usosMagicos" yaml:"usosMagicos"`
	Correspondences correspondence `json:"correspondencias" yaml:"correspondencias"`
	Invocation      string         `json:"invocacao" yaml:"invocacao"`
}

type correspondence struct {
	Herbs  []string `json:"ervas" yaml:"ervas"`
	Stones []string `json:"pedras" yaml:"pedras"`
	Colors []string `json:"cores" yaml:"cores"`
}

type goddessFile struct {
	Goddesses map[string]goddessEntry `json:"deusas" yaml:"deusas"`
}

type goddessEntry struct {
	Name       string `json:"nome" yaml:"nome"`
	Element    string `json:"elemento" yaml:"elemento"`
	Domain     string `json:"dominio" yaml:"dominio"`
	History    string `json:"historia" yaml:"historia"`
	Origin     string `json:"origem" yaml:"origem"`
	Invocation string `json:"invocacao" yaml:"invocacao"`
}

// parseKey converts a table key to a number in [1, max].
func parseKey(key string, maxKey int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil {
		return 0, fmt.Errorf("%w: key %q is not a number", ErrSchema, key)
	}
	if n < 1 || n > maxKey {
		return 0, fmt.Errorf("%w: key %d outside 1..%d", ErrSchema, n, maxKey)
	}
	return n, nil
}

func (f mansionFile) records() (map[int]domain.LunarMansionRecord, error) {
	if f.Mansions == nil {
		return nil, fmt.Errorf("%w: missing \"mansoes\" object", ErrSchema)
	}
	out := make(map[int]domain.LunarMansionRecord, len(f.Mansions))
	for key, e := range f.Mansions {
		n, err := parseKey(key, domain.MansionCount)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("%w: mansion %d has no name", ErrSchema, n)
		}
		out[n] = domain.LunarMansionRecord{
			Number:      n,
			Name:        e.Name,
			Spirit:      e.Spirit,
			Nature:      e.Nature,
			Meaning:     e.Meaning,
			MagicalUses: e.MagicalUses,
			Correspondences: domain.MansionCorrespondences{
				Herbs:  e.Correspondences.Herbs,
				Stones: e.Correspondences.Stones,
				Colors: e.Correspondences.Colors,
			},
			Invocation: e.Invocation,
		}
	}
	return out, nil
}

func (f goddessFile) records() (map[int]domain.GoddessRecord, error) {
	if f.Goddesses == nil {
		return nil, fmt.Errorf("%w: missing \"deusas\" object", ErrSchema)
	}
	out := make(map[int]domain.GoddessRecord, len(f.Goddesses))
	for key, e := range f.Goddesses {
		n, err := parseKey(key, MaxDayOfYear)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("%w: goddess for day %d has no name", ErrSchema, n)
		}
		out[n] = domain.GoddessRecord(e)
	}
	return out, nil
}
