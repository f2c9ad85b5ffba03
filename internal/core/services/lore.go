package services

import (
	"fmt"
	"slices"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
)

// builtinGoddesses is the fixed goddess mapping keyed by day of year.
// Only two days are populated; every other day resolves to
// universalGoddess unless the data directory supplies a record.
var builtinGoddesses = map[int]domain.GoddessRecord{
	1: {Name: "Brigid", Element: "Fire", Domain: "Forge, Poetry, Healing"},
	2: {Name: "Isis", Element: "Water", Domain: "Magic, Mysteries, Protection"},
}

var universalGoddess = domain.GoddessRecord{
	Name:    "Universal Goddess",
	Element: "All",
	Domain:  "Harmony and Balance",
}

const unknownPhaseDescription = "General lunar influence."

var phaseDescriptions = map[domain.Phase]string{
	domain.PhaseNew:    "A time for new beginnings, planting seeds of intention, introspection and planning.",
	domain.PhaseWaxing: "A period of growth, expansion, building and manifesting projects.",
	domain.PhaseFull:   "A moment of culmination, celebration, gratitude and releasing what no longer serves.",
	domain.PhaseWaning: "A phase of release, cleansing, reflection and preparation for the new cycle.",
}

var phaseCorrespondences = map[domain.Phase]domain.PhaseCorrespondences{
	domain.PhaseNew: {
		Colors:   []string{"Black", "Dark blue", "Violet"},
		Crystals: []string{"Obsidian", "Onyx", "Hematite"},
		Herbs:    []string{"Mugwort", "Sage", "Cedar"},
	},
	domain.PhaseWaxing: {
		Colors:   []string{"Green", "Gold", "Yellow"},
		Crystals: []string{"Green quartz", "Citrine", "Aventurine"},
		Herbs:    []string{"Basil", "Mint", "Rosemary"},
	},
	domain.PhaseFull: {
		Colors:   []string{"White", "Silver", "Light blue"},
		Crystals: []string{"Moonstone", "Clear quartz", "Selenite"},
		Herbs:    []string{"Jasmine", "Rose", "Lavender"},
	},
	domain.PhaseWaning: {
		Colors:   []string{"Grey", "Brown", "Black"},
		Crystals: []string{"Black tourmaline", "Smoky quartz", "Hematite"},
		Herbs:    []string{"Rue", "Guinea hen weed", "Rosemary"},
	},
}

// defaultMansion synthesizes the record used when a mansion is not loaded.
func defaultMansion(number int) domain.LunarMansionRecord {
	return domain.LunarMansionRecord{
		Number:      number,
		Name:        fmt.Sprintf("Mansion %d", number),
		Spirit:      "Lunar Spirit",
		Nature:      "Neutral",
		Meaning:     "General lunar influence",
		MagicalUses: []string{"Lunar rituals", "Meditation", "Intuition"},
		Correspondences: domain.MansionCorrespondences{
			Herbs:  []string{"Mugwort", "Sage"},
			Stones: []string{"Moonstone", "Quartz"},
			Colors: []string{"Silver", "White"},
		},
	}
}

func clonePhaseCorrespondences(c domain.PhaseCorrespondences) domain.PhaseCorrespondences {
	return domain.PhaseCorrespondences{
		Colors:   slices.Clone(c.Colors),
		Crystals: slices.Clone(c.Crystals),
		Herbs:    slices.Clone(c.Herbs),
	}
}
