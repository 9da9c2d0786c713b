package deck

import (
	"strconv"
	"strings"

	"github.com/youruser/deckapp/internal/cards"
)

// Positional layout of a deck file: MainSlots main ids, SeparatorLines
// blank lines, then ExtraSlots extra ids. Unused slots hold EmptySlot.
const (
	MainSlots      = 60
	SeparatorLines = 5
	ExtraSlots     = 15
	EmptySlot      = "-1"

	extraOffset = MainSlots + SeparatorLines
)

// Export encodes the deck in the positional layout. It refuses, returning
// a *ValidationError with every violation, when Validate fails.
func (d *Deck) Export() (string, error) {
	if v := d.Validate(); len(v) > 0 {
		return "", &ValidationError{Violations: v}
	}
	lines := make([]string, 0, extraOffset+ExtraSlots)
	lines = appendSlots(lines, d.main.IDs(), MainSlots)
	for range SeparatorLines {
		lines = append(lines, "")
	}
	lines = appendSlots(lines, d.extra.IDs(), ExtraSlots)
	return strings.Join(lines, "\n"), nil
}

func appendSlots(lines []string, ids []int, slots int) []string {
	for i := range slots {
		if i < len(ids) {
			lines = append(lines, strconv.Itoa(ids[i]))
		} else {
			lines = append(lines, EmptySlot)
		}
	}
	return lines
}

// ImportReport counts what an import kept and dropped.
type ImportReport struct {
	Main       int `json:"main"`
	Extra      int `json:"extra"`
	Unresolved int `json:"unresolved"`
	// Rejected counts resolved cards the zone rules refused: the wrong
	// zone, a reserved id or a copy beyond MaxCopies.
	Rejected int `json:"rejected"`
}

// Import replaces both zones with the ids read from a positional deck file.
// Blank and "-1" lines are skipped; ids that do not resolve exactly are
// dropped, and resolved cards go through the same checks as Add. Lines
// 1-60 feed the main zone and lines 66-80 the extra zone. The deck is only
// modified once both zones are assembled.
func (d *Deck) Import(text string) ImportReport {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	var rep ImportReport
	main := d.importZone(cards.ZoneMain, window(lines, 0, MainSlots), &rep)
	extra := d.importZone(cards.ZoneExtra, window(lines, extraOffset, extraOffset+ExtraSlots), &rep)
	d.replace(main.cards, extra.cards)
	rep.Main, rep.Extra = main.Len(), extra.Len()
	return rep
}

func window(lines []string, from, to int) []string {
	if from >= len(lines) {
		return nil
	}
	return lines[from:min(to, len(lines))]
}

// importZone assembles a detached zone of the given kind from lines.
func (d *Deck) importZone(kind cards.Zone, lines []string, rep *ImportReport) *Zone {
	z := &Zone{kind: kind, cards: []*cards.Card{}}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || line == EmptySlot {
			continue
		}
		id, err := strconv.Atoi(line)
		if err != nil || strconv.Itoa(id) != line {
			rep.Unresolved++
			continue
		}
		c, ok := d.resolve(id)
		if !ok {
			rep.Unresolved++
			continue
		}
		if !z.add(c) {
			rep.Rejected++
		}
	}
	return z
}
