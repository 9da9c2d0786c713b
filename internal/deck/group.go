package deck

import (
	"slices"

	"github.com/youruser/deckapp/internal/cards"
)

// Group is a run of copies of one card.
type Group struct {
	Card  *cards.Card `json:"card"`
	Count int         `json:"count"`
}

// ZoneView is the read-only display form of a zone.
type ZoneView struct {
	Zone        cards.Zone  `json:"zone"`
	Groups      []Group     `json:"groups"`
	TotalCount  int         `json:"total_count"`
	Limit       int         `json:"limit"`
	LimitStatus LimitStatus `json:"limit_status"`
}

// GroupCards orders a copy of list by id and collapses adjacent equal ids
// into one group. list itself is not reordered.
func GroupCards(list []*cards.Card) []Group {
	sorted := slices.Clone(list)
	slices.SortStableFunc(sorted, func(a, b *cards.Card) int { return a.ID - b.ID })

	groups := []Group{}
	for _, c := range sorted {
		if n := len(groups); n > 0 && groups[n-1].Card.ID == c.ID {
			groups[n-1].Count++
			continue
		}
		groups = append(groups, Group{Card: c, Count: 1})
	}
	return groups
}

// View returns the grouped display of a zone with its size status.
func (d *Deck) View(kind cards.Zone) (ZoneView, error) {
	z, err := d.Zone(kind)
	if err != nil {
		return ZoneView{}, err
	}
	return ZoneView{
		Zone:        kind,
		Groups:      GroupCards(z.cards),
		TotalCount:  z.Len(),
		Limit:       Limit(kind),
		LimitStatus: Status(kind, z.Len()),
	}, nil
}
