package domain

// MansionCount is the number of lunar mansions.
const MansionCount = 28

// MansionCorrespondences lists the ritual associations of a mansion.
type MansionCorrespondences struct {
	Herbs  []string `json:"herbs,omitempty"`
	Stones []string `json:"stones,omitempty"`
	Colors []string `json:"colors,omitempty"`
}

// LunarMansionRecord describes one of the 28 lunar mansions.
type LunarMansionRecord struct {
	// Number is the mansion index in [1, MansionCount].
	Number int `json:"number"`

	// Name is the traditional name of the mansion.
	Name string `json:"name"`

	// Spirit is the guiding-spirit label.
	Spirit string `json:"spirit,omitempty"`

	// Nature is the mansion's general character (e.g. Neutral, Fortunate).
	Nature string `json:"nature,omitempty"`

	// Meaning is a one-paragraph interpretation.
	Meaning string `json:"meaning,omitempty"`

	// MagicalUses lists operations the mansion favours.
	MagicalUses []string `json:"magical_uses,omitempty"`

	// Correspondences lists associated herbs, stones and colors.
	Correspondences MansionCorrespondences `json:"correspondences"`

	// Invocation is optional devotional text.
	Invocation string `json:"invocation,omitempty"`
}

// GoddessRecord describes the goddess associated with a day of the year.
type GoddessRecord struct {
	Name       string `json:"name"`
	Element    string `json:"element"`
	Domain     string `json:"domain"`
	History    string `json:"history,omitempty"`
	Origin     string `json:"origin,omitempty"`
	Invocation string `json:"invocation,omitempty"`
}

// PhaseCorrespondences lists the day correspondences for a lunar phase.
type PhaseCorrespondences struct {
	Colors   []string `json:"colors"`
	Crystals []string `json:"crystals"`
	Herbs    []string `json:"herbs"`
}

// Content is the looked-up material for one date.
type Content struct {
	Mansion              LunarMansionRecord   `json:"mansion"`
	Goddess              GoddessRecord        `json:"goddess"`
	PhaseDescription     string               `json:"phase_description"`
	PhaseCorrespondences PhaseCorrespondences `json:"phase_correspondences"`
}

// Tables holds the lookup tables read from the data directory.
// Either map may be empty; lookups then fall through to defaults.
type Tables struct {
	// Mansions is keyed by mansion number.
	Mansions map[int]LunarMansionRecord

	// Goddesses is keyed by day of year.
	Goddesses map[int]GoddessRecord
}

// EmptyTables returns tables with no entries.
func EmptyTables() Tables {
	return Tables{
		Mansions:  make(map[int]LunarMansionRecord),
		Goddesses: make(map[int]GoddessRecord),
	}
}
