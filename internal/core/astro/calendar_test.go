package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLunarMansion_AlwaysInRange(t *testing.T) {
	for _, year := range []int{2023, 2024} {
		start := date(year, time.January, 1)
		for d := start; d.Year() == year; d = d.AddDate(0, 0, 1) {
			m := LunarMansion(d)
			assert.GreaterOrEqual(t, m, 1, "date %s", d.Format(domain.DateLayout))
			assert.LessOrEqual(t, m, 28, "date %s", d.Format(domain.DateLayout))
		}
	}
}

func TestLunarMansion_CyclesEvery28Days(t *testing.T) {
	start := date(2024, time.January, 1)
	for d := start; d.Year() == 2024; d = d.AddDate(0, 0, 1) {
		next := d.AddDate(0, 0, 28)
		if next.Year() != d.Year() {
			break
		}
		assert.Equal(t, LunarMansion(d), LunarMansion(next), "date %s", d.Format(domain.DateLayout))
	}
}

func TestLunarMansion_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected int
	}{
		{"first day of year", date(2024, time.January, 1), 1},
		{"day 28", date(2024, time.January, 28), 28},
		{"day 29 wraps", date(2024, time.January, 29), 1},
		{"equinox 2024 (day 80)", date(2024, time.March, 20), 24},
		{"leap day", date(2024, time.February, 29), 4},
		{"last day of leap year (day 366)", date(2024, time.December, 31), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LunarMansion(tt.date))
		})
	}
}

func TestDayOfYear(t *testing.T) {
	assert.Equal(t, 80, DayOfYear(date(2024, time.March, 20)))
	assert.Equal(t, 79, DayOfYear(date(2023, time.March, 20)))
}

func TestLunarPhase_Quartiles(t *testing.T) {
	tests := []struct {
		day      int
		expected domain.Phase
	}{
		{1, domain.PhaseNew},
		{5, domain.PhaseNew},
		{7, domain.PhaseNew},
		{8, domain.PhaseWaxing},
		{10, domain.PhaseWaxing},
		{14, domain.PhaseWaxing},
		{15, domain.PhaseFull},
		{20, domain.PhaseFull},
		{21, domain.PhaseFull},
		{22, domain.PhaseWaning},
		{25, domain.PhaseWaning},
		{31, domain.PhaseWaning},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LunarPhase(date(2024, time.January, tt.day)), "day %d", tt.day)
	}
}

func TestLunarPhase_DependsOnlyOnDayOfMonth(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		for day := 1; day <= 28; day++ {
			assert.Equal(t,
				LunarPhase(date(2024, time.January, day)),
				LunarPhase(date(2031, month, day)))
		}
	}
}

func TestSeason_SouthernBoundaries(t *testing.T) {
	tests := []struct {
		date     time.Time
		expected domain.Season
	}{
		{date(2024, time.January, 15), domain.SeasonSummer},
		{date(2024, time.March, 19), domain.SeasonSummer},
		{date(2024, time.March, 20), domain.SeasonAutumn},
		{date(2024, time.June, 20), domain.SeasonAutumn},
		{date(2024, time.June, 21), domain.SeasonWinter},
		{date(2024, time.September, 21), domain.SeasonWinter},
		{date(2024, time.September, 22), domain.SeasonSpring},
		{date(2024, time.December, 20), domain.SeasonSpring},
		{date(2024, time.December, 21), domain.SeasonSummer},
	}

	for _, tt := range tests {
		t.Run(tt.date.Format(domain.DateLayout), func(t *testing.T) {
			assert.Equal(t, tt.expected, Season(tt.date))
		})
	}
}

func TestSeasonIn_NorthMirrorsSouth(t *testing.T) {
	d := date(2024, time.March, 20)

	assert.Equal(t, domain.SeasonAutumn, SeasonIn(d, domain.HemisphereSouth))
	assert.Equal(t, domain.SeasonSpring, SeasonIn(d, domain.HemisphereNorth))
}

func TestWeekdayIndex_MondayIsZero(t *testing.T) {
	// 2024-01-01 was a Monday.
	for i := 0; i < 7; i++ {
		assert.Equal(t, i, WeekdayIndex(date(2024, time.January, 1+i)))
	}
	assert.Equal(t, 5, WeekdayIndex(date(2024, time.January, 20)), "Saturday")
}
