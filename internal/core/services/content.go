package services

import (
	"time"

	"github.com/custodia-labs/aurora-cli/internal/core/astro"
	"github.com/custodia-labs/aurora-cli/internal/core/domain"
	"github.com/custodia-labs/aurora-cli/internal/core/ports/driven"
	"github.com/custodia-labs/aurora-cli/internal/core/ports/driving"
	"github.com/custodia-labs/aurora-cli/internal/logger"
)

// Ensure ContentService implements the interface.
var _ driving.ContentService = (*ContentService)(nil)

// ContentService resolves attributes into descriptive content.
// Loaded tables take precedence over built-in tables; anything
// still missing resolves to a default record.
type ContentService struct {
	tables driven.TableSource
}

// NewContentService creates a content service.
// A nil table source means every lookup uses built-in content.
func NewContentService(tables driven.TableSource) *ContentService {
	return &ContentService{tables: tables}
}

func (s *ContentService) loaded() domain.Tables {
	if s.tables == nil {
		return domain.EmptyTables()
	}
	return s.tables.Tables()
}

// MansionData returns the loaded record for a mansion, or the default.
func (s *ContentService) MansionData(number int) domain.LunarMansionRecord {
	if rec, ok := s.loaded().Mansions[number]; ok {
		rec.Number = number
		return rec
	}
	logger.Debug("mansion %d not loaded, using default record", number)
	return defaultMansion(number)
}

// GoddessOfDay returns the goddess for the date's day of year.
func (s *ContentService) GoddessOfDay(date time.Time) domain.GoddessRecord {
	day := astro.DayOfYear(date)
	if rec, ok := s.loaded().Goddesses[day]; ok {
		return rec
	}
	if rec, ok := builtinGoddesses[day]; ok {
		return rec
	}
	return universalGoddess
}

// PhaseDescription returns the fixed description of a phase.
func (s *ContentService) PhaseDescription(phase domain.Phase) string {
	if d, ok := phaseDescriptions[phase]; ok {
		return d
	}
	return unknownPhaseDescription
}

// PhaseCorrespondences returns the fixed correspondences of a phase.
// Unknown phases use the New entry.
func (s *ContentService) PhaseCorrespondences(phase domain.Phase) domain.PhaseCorrespondences {
	c, ok := phaseCorrespondences[phase]
	if !ok {
		c = phaseCorrespondences[domain.PhaseNew]
	}
	return clonePhaseCorrespondences(c)
}

// Resolve bundles every lookup for a set of attributes.
func (s *ContentService) Resolve(attrs domain.Attributes) domain.Content {
	return domain.Content{
		Mansion:              s.MansionData(attrs.Mansion),
		Goddess:              s.GoddessOfDay(attrs.Date),
		PhaseDescription:     s.PhaseDescription(attrs.Phase),
		PhaseCorrespondences: s.PhaseCorrespondences(attrs.Phase),
	}
}
