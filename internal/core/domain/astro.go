package domain

import (
	"fmt"
	"strings"
	"time"
)

// Phase is the coarse lunar phase bucket derived from the day of month.
type Phase string

// Lunar phases in cycle order.
const (
	PhaseNew    Phase = "New"
	PhaseWaxing Phase = "Waxing"
	PhaseFull   Phase = "Full"
	PhaseWaning Phase = "Waning"
)

// Phases returns every phase in cycle order.
func Phases() []Phase {
	return []Phase{PhaseNew, PhaseWaxing, PhaseFull, PhaseWaning}
}

// IsValid returns true if the phase is recognised.
func (p Phase) IsValid() bool {
	switch p {
	case PhaseNew, PhaseWaxing, PhaseFull, PhaseWaning:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p Phase) String() string {
	return string(p)
}

// Season is the astronomical season for a date.
type Season string

// Seasons.
const (
	SeasonSummer Season = "Summer"
	SeasonAutumn Season = "Autumn"
	SeasonWinter Season = "Winter"
	SeasonSpring Season = "Spring"
)

// String returns the string representation.
func (s Season) String() string {
	return string(s)
}

// Opposite returns the season on the other side of the equator.
func (s Season) Opposite() Season {
	switch s {
	case SeasonSummer:
		return SeasonWinter
	case SeasonWinter:
		return SeasonSummer
	case SeasonAutumn:
		return SeasonSpring
	case SeasonSpring:
		return SeasonAutumn
	default:
		return s
	}
}

// Hemisphere selects which seasonal calendar applies.
type Hemisphere string

// Available hemispheres. South is the default.
const (
	HemisphereSouth Hemisphere = "south"
	HemisphereNorth Hemisphere = "north"
)

// IsValid returns true if the hemisphere is recognised.
func (h Hemisphere) IsValid() bool {
	return h == HemisphereSouth || h == HemisphereNorth
}

// String returns the string representation.
func (h Hemisphere) String() string {
	return string(h)
}

// ParseHemisphere converts user input into a Hemisphere.
// An empty string yields the southern default.
func ParseHemisphere(s string) (Hemisphere, error) {
	if strings.TrimSpace(s) == "" {
		return HemisphereSouth, nil
	}
	h := Hemisphere(strings.ToLower(strings.TrimSpace(s)))
	if !h.IsValid() {
		return "", fmt.Errorf("%w: %q (use south or north)", ErrInvalidHemisphere, s)
	}
	return h, nil
}

// Theme is a life area scored for magical elections.
type Theme string

// The six election themes.
const (
	ThemeLove             Theme = "love"
	ThemeWork             Theme = "work"
	ThemeBeauty           Theme = "beauty"
	ThemeProsperity       Theme = "prosperity"
	ThemeJustice          Theme = "justice"
	ThemeSpiritualContact Theme = "spiritual_contact"
)

// Themes returns the six themes in report order.
func Themes() []Theme {
	return []Theme{
		ThemeLove,
		ThemeWork,
		ThemeBeauty,
		ThemeProsperity,
		ThemeJustice,
		ThemeSpiritualContact,
	}
}

// IsValid returns true if the theme is one of the six fixed themes.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLove, ThemeWork, ThemeBeauty, ThemeProsperity, ThemeJustice, ThemeSpiritualContact:
		return true
	default:
		return false
	}
}

// Label returns the display label used in reports.
func (t Theme) Label() string {
	switch t {
	case ThemeLove:
		return "Love"
	case ThemeWork:
		return "Work"
	case ThemeBeauty:
		return "Beauty"
	case ThemeProsperity:
		return "Prosperity"
	case ThemeJustice:
		return "Justice"
	case ThemeSpiritualContact:
		return "Spiritual Contact"
	default:
		return string(t)
	}
}

// Favorability is the label attached to a theme score.
type Favorability string

// Favorability bands, best first.
const (
	FavorabilityExcellent   Favorability = "Excellent"
	FavorabilityFavorable   Favorability = "Favorable"
	FavorabilityNeutral     Favorability = "Neutral"
	FavorabilityUnfavorable Favorability = "Unfavorable"
)

// String returns the string representation.
func (f Favorability) String() string {
	return string(f)
}

// ThemeScore is the favorability of one theme on one date.
type ThemeScore struct {
	Theme        Theme        `json:"theme"`
	Score        int          `json:"score"`
	Favorability Favorability `json:"favorability"`
}

// Attributes holds everything the calculator derives from a date.
type Attributes struct {
	Date       time.Time    `json:"date"`
	DayOfYear  int          `json:"day_of_year"`
	Weekday    time.Weekday `json:"weekday"`
	Mansion    int          `json:"mansion"`
	Phase      Phase        `json:"phase"`
	Season     Season       `json:"season"`
	Hemisphere Hemisphere   `json:"hemisphere"`
	Scores     []ThemeScore `json:"scores"`
}

// Score returns the score for a theme, if present.
func (a Attributes) Score(theme Theme) (ThemeScore, bool) {
	for _, s := range a.Scores {
		if s.Theme == theme {
			return s, true
		}
	}
	return ThemeScore{}, false
}
