package astro

import (
	"time"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
)

// DayOfYear returns the 1-based ordinal day of the date's year.
func DayOfYear(date time.Time) int {
	return date.YearDay()
}

// LunarMansion returns the mansion index in [1, 28] for a date.
func LunarMansion(date time.Time) int {
	return (DayOfYear(date)-1)%domain.MansionCount + 1
}

// LunarPhase buckets the day of month into four quartiles:
// 1-7 New, 8-14 Waxing, 15-21 Full, 22 onwards Waning.
func LunarPhase(date time.Time) domain.Phase {
	switch day := date.Day(); {
	case day <= 7:
		return domain.PhaseNew
	case day <= 14:
		return domain.PhaseWaxing
	case day <= 21:
		return domain.PhaseFull
	default:
		return domain.PhaseWaning
	}
}

// Season returns the southern-hemisphere season using fixed
// solstice and equinox dates: Dec 21, Mar 20, Jun 21, Sep 22.
func Season(date time.Time) domain.Season {
	m, d := date.Month(), date.Day()
	switch {
	case (m == time.December && d >= 21) || m == time.January || m == time.February ||
		(m == time.March && d < 20):
		return domain.SeasonSummer
	case m == time.March || m == time.April || m == time.May ||
		(m == time.June && d < 21):
		return domain.SeasonAutumn
	case m == time.June || m == time.July || m == time.August ||
		(m == time.September && d < 22):
		return domain.SeasonWinter
	default:
		return domain.SeasonSpring
	}
}

// SeasonIn returns the season for the given hemisphere.
// The northern calendar mirrors the southern one.
func SeasonIn(date time.Time, h domain.Hemisphere) domain.Season {
	s := Season(date)
	if h == domain.HemisphereNorth {
		return s.Opposite()
	}
	return s
}

// WeekdayIndex returns the ISO weekday as an index with Monday = 0
// and Sunday = 6. The modifier tables are keyed by this index.
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}
