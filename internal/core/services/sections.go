package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/aurora-cli/internal/core/domain"
)

// Report text. Dates use a fixed English layout.
const (
	reportTitle    = "AURORA SAGRADA"
	reportSubtitle = "Astromagical Guide"
	footerCaption  = "Aurora Sagrada • Astromagical Guide • Generated automatically"

	captionDateLayout = "2 January 2006"
	infoDateLayout    = "Monday, 2 January 2006"

	sectionSpace = 20
	maxUses      = 5
	maxHerbs     = 5
	maxStones    = 5
	maxColors    = 3
)

// sectionBuilder builds one report section. Builders never fail;
// optional fields that are empty are left out.
type sectionBuilder func(date time.Time, attrs domain.Attributes, content domain.Content) []domain.Block

var sectionBuilders = map[domain.SectionKind]sectionBuilder{
	domain.SectionHeader:          headerSection,
	domain.SectionGeneralInfo:     generalInfoSection,
	domain.SectionLunarMansion:    lunarMansionSection,
	domain.SectionGoddess:         goddessSection,
	domain.SectionLunarPhase:      lunarPhaseSection,
	domain.SectionElections:       electionsSection,
	domain.SectionCorrespondences: correspondencesSection,
	domain.SectionFooter:          footerSection,
}

// buildSections runs every builder in document order.
func buildSections(date time.Time, attrs domain.Attributes, content domain.Content) []domain.Section {
	order := domain.SectionOrder()
	sections := make([]domain.Section, 0, len(order))
	for _, kind := range order {
		sections = append(sections, domain.Section{
			Kind:   kind,
			Blocks: sectionBuilders[kind](date, attrs, content),
		})
	}
	return sections
}

func headerSection(date time.Time, _ domain.Attributes, _ domain.Content) []domain.Block {
	return []domain.Block{
		domain.Heading(domain.StyleTitle, reportTitle),
		domain.Paragraph(domain.StyleCaption, reportSubtitle+" • "+date.Format(captionDateLayout)),
		domain.Spacer(20),
		domain.Rule(),
		domain.Spacer(15),
	}
}

func generalInfoSection(date time.Time, attrs domain.Attributes, _ domain.Content) []domain.Block {
	rows := [][]string{
		{"Date:", date.Format(infoDateLayout)},
		{"Lunar Phase:", attrs.Phase.String()},
		{"Lunar Mansion:", Ordinal(attrs.Mansion) + " Mansion"},
		{"Weekday:", attrs.Weekday.String()},
		{"Season:", attrs.Season.String()},
	}
	return []domain.Block{
		domain.Heading(domain.StyleHeading1, "ASTROLOGICAL INFORMATION"),
		domain.TableBlock(domain.StyleInfoTable, nil, rows),
		domain.Spacer(sectionSpace),
	}
}

func lunarMansionSection(_ time.Time, _ domain.Attributes, content domain.Content) []domain.Block {
	m := content.Mansion
	blocks := []domain.Block{
		domain.Heading(domain.StyleHeading1, "LUNAR MANSION"),
		domain.Heading(domain.StyleHeading2, m.Name),
	}
	if m.Spirit != "" {
		blocks = append(blocks, domain.LabeledParagraph(domain.StyleBody, "Guiding Spirit", m.Spirit))
	}
	if m.Meaning != "" {
		blocks = append(blocks, domain.Paragraph(domain.StyleBody, m.Meaning))
	}
	if len(m.MagicalUses) > 0 {
		blocks = append(blocks, domain.Heading(domain.StyleHeading2, "Magical Uses"))
		for _, use := range firstN(m.MagicalUses, maxUses) {
			blocks = append(blocks, domain.BulletItem(domain.StyleBody, use))
		}
	}
	corr := []domain.Block{}
	corr = appendList(corr, "Herbs", m.Correspondences.Herbs, maxHerbs)
	corr = appendList(corr, "Stones", m.Correspondences.Stones, maxStones)
	corr = appendList(corr, "Colors", m.Correspondences.Colors, maxColors)
	if len(corr) > 0 {
		blocks = append(blocks, domain.Heading(domain.StyleHeading2, "Correspondences"))
		blocks = append(blocks, corr...)
	}
	if m.Invocation != "" {
		blocks = append(blocks,
			domain.Heading(domain.StyleHeading2, "Invocation"),
			domain.Quote(domain.StyleQuote, m.Invocation),
		)
	}
	return append(blocks, domain.Spacer(sectionSpace))
}

func goddessSection(_ time.Time, _ domain.Attributes, content domain.Content) []domain.Block {
	g := content.Goddess
	blocks := []domain.Block{
		domain.Heading(domain.StyleHeading1, "GODDESS OF THE DAY"),
		domain.Heading(domain.StyleHeading2, g.Name),
		domain.LabeledParagraph(domain.StyleBody, "Element", g.Element),
		domain.LabeledParagraph(domain.StyleBody, "Domain", g.Domain),
	}
	if g.Origin != "" {
		blocks = append(blocks, domain.LabeledParagraph(domain.StyleBody, "Origin", g.Origin))
	}
	if g.History != "" {
		blocks = append(blocks, domain.Paragraph(domain.StyleBody, g.History))
	}
	if g.Invocation != "" {
		blocks = append(blocks, domain.Quote(domain.StyleQuote, g.Invocation))
	}
	return append(blocks, domain.Spacer(sectionSpace))
}

func lunarPhaseSection(_ time.Time, attrs domain.Attributes, content domain.Content) []domain.Block {
	return []domain.Block{
		domain.Heading(domain.StyleHeading1, "LUNAR PHASE"),
		domain.Heading(domain.StyleHeading2, attrs.Phase.String()+" Moon"),
		domain.Paragraph(domain.StyleBody, content.PhaseDescription),
		domain.Spacer(sectionSpace),
	}
}

func electionsSection(_ time.Time, attrs domain.Attributes, _ domain.Content) []domain.Block {
	rows := make([][]string, 0, len(attrs.Scores))
	for _, s := range attrs.Scores {
		rows = append(rows, []string{s.Theme.Label(), s.Favorability.String(), fmt.Sprintf("%d%%", s.Score)})
	}
	return []domain.Block{
		domain.Heading(domain.StyleHeading1, "MAGICAL ELECTIONS"),
		domain.TableBlock(domain.StyleElectionsTable, []string{"Theme", "Favorability", "Score"}, rows),
		domain.Spacer(sectionSpace),
	}
}

func correspondencesSection(_ time.Time, _ domain.Attributes, content domain.Content) []domain.Block {
	c := content.PhaseCorrespondences
	return []domain.Block{
		domain.Heading(domain.StyleHeading1, "DAY CORRESPONDENCES"),
		domain.LabeledParagraph(domain.StyleBody, "Colors", strings.Join(c.Colors, ", ")),
		domain.LabeledParagraph(domain.StyleBody, "Crystals", strings.Join(c.Crystals, ", ")),
		domain.LabeledParagraph(domain.StyleBody, "Herbs", strings.Join(c.Herbs, ", ")),
		domain.Spacer(sectionSpace),
	}
}

func footerSection(_ time.Time, _ domain.Attributes, _ domain.Content) []domain.Block {
	return []domain.Block{
		domain.Rule(),
		domain.Spacer(10),
		domain.Paragraph(domain.StyleCaption, footerCaption),
	}
}

func appendList(blocks []domain.Block, label string, items []string, limit int) []domain.Block {
	if len(items) == 0 {
		return blocks
	}
	return append(blocks, domain.LabeledParagraph(domain.StyleBody, label, strings.Join(firstN(items, limit), ", ")))
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// Ordinal returns n with its English ordinal suffix (1st, 2nd, 11th, 24th).
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
