package astro

import (
	"time"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
)

// BaseScore is the neutral starting score for every theme.
const BaseScore = 50

// Score bounds.
const (
	MinScore = 0
	MaxScore = 100
)

// weekdayModifiers is indexed Monday..Sunday.
var weekdayModifiers = map[domain.Theme][7]int{
	domain.ThemeLove:             {0, 10, -5, 5, 15, 20, 0},
	domain.ThemeWork:             {0, 15, 20, 15, 10, 5, -10},
	domain.ThemeBeauty:           {5, 10, 5, 10, 20, 15, 0},
	domain.ThemeProsperity:       {10, 5, 15, 20, 15, 10, 5},
	domain.ThemeJustice:          {15, 10, 20, 15, 10, 5, 0},
	domain.ThemeSpiritualContact: {20, 5, 0, 10, 5, 0, 15},
}

// phaseModifiers is sparse; absent entries count as zero.
var phaseModifiers = map[domain.Phase]map[domain.Theme]int{
	domain.PhaseNew: {
		domain.ThemeSpiritualContact: 20,
		domain.ThemeWork:             -10,
	},
	domain.PhaseWaxing: {
		domain.ThemeProsperity: 15,
		domain.ThemeWork:       10,
	},
	domain.PhaseFull: {
		domain.ThemeLove:   20,
		domain.ThemeBeauty: 15,
	},
	domain.PhaseWaning: {
		domain.ThemeJustice:          15,
		domain.ThemeSpiritualContact: 10,
	},
}

// WeekdayModifier returns the weekday adjustment for a theme.
// Unknown themes and out-of-range indexes yield zero.
func WeekdayModifier(theme domain.Theme, weekdayIndex int) int {
	mods, ok := weekdayModifiers[theme]
	if !ok || weekdayIndex < 0 || weekdayIndex >= len(mods) {
		return 0
	}
	return mods[weekdayIndex]
}

// PhaseModifier returns the lunar-phase adjustment for a theme.
func PhaseModifier(phase domain.Phase, theme domain.Theme) int {
	return phaseModifiers[phase][theme]
}

// Score sums the components and clamps the result to [MinScore, MaxScore].
func Score(base, weekdayMod, phaseMod int) int {
	return min(MaxScore, max(MinScore, base+weekdayMod+phaseMod))
}

// ThemeScore returns the favorability score in [0, 100] of a theme on a date.
// The same date and theme always yield the same score.
func ThemeScore(date time.Time, theme domain.Theme) int {
	return Score(
		BaseScore,
		WeekdayModifier(theme, WeekdayIndex(date)),
		PhaseModifier(LunarPhase(date), theme),
	)
}

// Favorability labels a score. Bands are closed below and open above:
// [80, 100] Excellent, [60, 80) Favorable, [40, 60) Neutral, else Unfavorable.
func Favorability(score int) domain.Favorability {
	switch {
	case score >= 80:
		return domain.FavorabilityExcellent
	case score >= 60:
		return domain.FavorabilityFavorable
	case score >= 40:
		return domain.FavorabilityNeutral
	default:
		return domain.FavorabilityUnfavorable
	}
}

// Scores returns a ThemeScore for each of the six themes in report order.
func Scores(date time.Time) []domain.ThemeScore {
	themes := domain.Themes()
	scores := make([]domain.ThemeScore, len(themes))
	for i, theme := range themes {
		s := ThemeScore(date, theme)
		scores[i] = domain.ThemeScore{
			Theme:        theme,
			Score:        s,
			Favorability: Favorability(s),
		}
	}
	return scores
}
