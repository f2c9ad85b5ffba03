package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aurora-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/aurora-cli/internal/core/astro"
	"github.com/custodia-labs/aurora-cli/internal/core/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestContentService_MansionData_Loaded(t *testing.T) {
	tables := memory.NewTableStore(map[int]domain.LunarMansionRecord{
		24: {Name: "Sa'd al-Su'ud", Spirit: "Abrine", Meaning: "Fortune of fortunes"},
	}, nil)
	svc := NewContentService(tables)

	rec := svc.MansionData(24)
	assert.Equal(t, 24, rec.Number)
	assert.Equal(t, "Sa'd al-Su'ud", rec.Name)
	assert.Equal(t, "Abrine", rec.Spirit)
}

func TestContentService_MansionData_DefaultForAnyMissingNumber(t *testing.T) {
	svc := NewContentService(memory.NewTableStore(map[int]domain.LunarMansionRecord{
		1: {Name: "Al-Sharatain"},
	}, nil))

	for _, n := range []int{0, 2, 28, 29, -1} {
		assert.Equal(t, defaultMansion(n), svc.MansionData(n), "mansion %d", n)
	}
}

func TestContentService_DefaultMansion(t *testing.T) {
	rec := defaultMansion(7)

	assert.Equal(t, "Mansion 7", rec.Name)
	assert.Equal(t, "Lunar Spirit", rec.Spirit)
	assert.Equal(t, "Neutral", rec.Nature)
	assert.Equal(t, "General lunar influence", rec.Meaning)
	assert.Equal(t, []string{"Lunar rituals", "Meditation", "Intuition"}, rec.MagicalUses)
	assert.Equal(t, []string{"Mugwort", "Sage"}, rec.Correspondences.Herbs)
	assert.Equal(t, []string{"Moonstone", "Quartz"}, rec.Correspondences.Stones)
	assert.Equal(t, []string{"Silver", "White"}, rec.Correspondences.Colors)
	assert.Empty(t, rec.Invocation)
}

func TestContentService_GoddessOfDay(t *testing.T) {
	svc := NewContentService(nil)

	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"day 1", day(2024, time.January, 1), "Brigid"},
		{"day 2", day(2025, time.January, 2), "Isis"},
		{"day 3", day(2024, time.January, 3), "Universal Goddess"},
		{"leap day 366", day(2024, time.December, 31), "Universal Goddess"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.GoddessOfDay(tt.date).Name)
		})
	}
}

func TestContentService_GoddessOfDay_LoadedTableTakesPrecedence(t *testing.T) {
	svc := NewContentService(memory.NewTableStore(nil, map[int]domain.GoddessRecord{
		1:  {Name: "Hestia", Element: "Fire", Domain: "Hearth"},
		80: {Name: "Ostara", Element: "Air", Domain: "Dawn", Invocation: "Hail, Ostara."},
	}))

	assert.Equal(t, "Hestia", svc.GoddessOfDay(day(2024, time.January, 1)).Name)
	assert.Equal(t, "Isis", svc.GoddessOfDay(day(2024, time.January, 2)).Name)
	assert.Equal(t, "Ostara", svc.GoddessOfDay(day(2024, time.March, 20)).Name)
}

func TestContentService_GoddessOfDay_UniversalDefault(t *testing.T) {
	g := NewContentService(nil).GoddessOfDay(day(2024, time.July, 4))
	assert.Equal(t, "Universal Goddess", g.Name)
	assert.Equal(t, "All", g.Element)
	assert.Equal(t, "Harmony and Balance", g.Domain)
}

func TestContentService_PhaseDescription(t *testing.T) {
	svc := NewContentService(nil)

	for _, p := range domain.Phases() {
		assert.NotEqual(t, unknownPhaseDescription, svc.PhaseDescription(p), "phase %s", p)
	}
	assert.Equal(t, "General lunar influence.", svc.PhaseDescription(domain.Phase("Eclipse")))
}

func TestContentService_PhaseCorrespondences(t *testing.T) {
	svc := NewContentService(nil)

	full := svc.PhaseCorrespondences(domain.PhaseFull)
	assert.Equal(t, []string{"White", "Silver", "Light blue"}, full.Colors)
	assert.Equal(t, []string{"Moonstone", "Clear quartz", "Selenite"}, full.Crystals)
	assert.Equal(t, []string{"Jasmine", "Rose", "Lavender"}, full.Herbs)

	unknown := svc.PhaseCorrespondences(domain.Phase("Eclipse"))
	assert.Equal(t, svc.PhaseCorrespondences(domain.PhaseNew), unknown)
}

func TestContentService_PhaseCorrespondences_ReturnsCopies(t *testing.T) {
	svc := NewContentService(nil)

	c := svc.PhaseCorrespondences(domain.PhaseWaxing)
	c.Colors[0] = "Mauve"

	assert.Equal(t, "Green", svc.PhaseCorrespondences(domain.PhaseWaxing).Colors[0])
}

func TestContentService_Resolve(t *testing.T) {
	svc := NewContentService(nil)
	attrs := astro.Calculate(day(2024, time.March, 20), domain.HemisphereSouth)

	content := svc.Resolve(attrs)

	require.Equal(t, 24, content.Mansion.Number)
	assert.Equal(t, "Mansion 24", content.Mansion.Name)
	assert.Equal(t, "Universal Goddess", content.Goddess.Name)
	assert.Equal(t, svc.PhaseDescription(domain.PhaseFull), content.PhaseDescription)
	assert.Equal(t, svc.PhaseCorrespondences(domain.PhaseFull), content.PhaseCorrespondences)
}
