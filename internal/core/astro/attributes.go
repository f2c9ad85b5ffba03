package astro

import (
	"time"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
)

// Calculate derives every attribute of a date. Only the calendar day of
// date is used; the time of day and location are discarded.
func Calculate(date time.Time, h domain.Hemisphere) domain.Attributes {
	day := domain.CivilDate(date)
	if !h.IsValid() {
		h = domain.HemisphereSouth
	}
	return domain.Attributes{
		Date:       day,
		DayOfYear:  DayOfYear(day),
		Weekday:    day.Weekday(),
		Mansion:    LunarMansion(day),
		Phase:      LunarPhase(day),
		Season:     SeasonIn(day, h),
		Hemisphere: h,
		Scores:     Scores(day),
	}
}
