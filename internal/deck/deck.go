package deck

import (
	"errors"
	"slices"

	"github.com/youruser/deckapp/internal/cards"
)

// MaxCopies is how many times one id may appear in a zone.
const MaxCopies = 3

var ErrUnknownZone = errors.New("unknown deck zone")

// CardLookup resolves card ids. *cards.Repository satisfies it.
type CardLookup interface {
	Card(id int) (*cards.Card, bool)
}

// Zone is an ordered multiset of cards in insertion order.
type Zone struct {
	kind  cards.Zone
	cards []*cards.Card
}

// Kind returns which zone this is.
func (z *Zone) Kind() cards.Zone { return z.kind }

// Len is the number of cards, copies included.
func (z *Zone) Len() int { return len(z.cards) }

// Cards returns the zone contents in order.
func (z *Zone) Cards() []*cards.Card { return slices.Clone(z.cards) }

// IDs returns the card ids in order.
func (z *Zone) IDs() []int {
	ids := make([]int, len(z.cards))
	for i, c := range z.cards {
		ids[i] = c.ID
	}
	return ids
}

// Count is the number of copies of id.
func (z *Zone) Count(id int) int {
	n := 0
	for _, c := range z.cards {
		if c.ID == id {
			n++
		}
	}
	return n
}

// CanAdd reports whether c may go into the zone: its type must belong to
// the zone, it must be outside the reserved id range and the zone must
// hold fewer than MaxCopies of it. Zone size is not checked here.
func (z *Zone) CanAdd(c *cards.Card) bool {
	if c == nil {
		return false
	}
	if c.Zone() != z.kind {
		return false
	}
	if !c.Deckable() {
		return false
	}
	return z.Count(c.ID) < MaxCopies
}

func (z *Zone) add(c *cards.Card) bool {
	if !z.CanAdd(c) {
		return false
	}
	z.cards = append(z.cards, c)
	return true
}

// remove drops the first copy of id.
func (z *Zone) remove(id int) bool {
	i := slices.IndexFunc(z.cards, func(c *cards.Card) bool { return c.ID == id })
	if i < 0 {
		return false
	}
	z.cards = slices.Delete(z.cards, i, i+1)
	return true
}

func (z *Zone) clear() { z.cards = nil }

// Deck is the main and extra zones plus the lookup used to resolve ids.
// A Deck is not safe for concurrent use.
type Deck struct {
	main   Zone
	extra  Zone
	lookup CardLookup
}

// New returns an empty deck resolving ids through lookup.
func New(lookup CardLookup) *Deck {
	return &Deck{
		main:   Zone{kind: cards.ZoneMain},
		extra:  Zone{kind: cards.ZoneExtra},
		lookup: lookup,
	}
}

// SetLookup replaces the id resolver, as after a repository reload. Cards
// already in the deck are kept.
func (d *Deck) SetLookup(lookup CardLookup) { d.lookup = lookup }

// Zone returns the zone of the given kind.
func (d *Deck) Zone(kind cards.Zone) (*Zone, error) {
	switch kind {
	case cards.ZoneMain:
		return &d.main, nil
	case cards.ZoneExtra:
		return &d.extra, nil
	}
	return nil, ErrUnknownZone
}

func (d *Deck) Main() *Zone  { return &d.main }
func (d *Deck) Extra() *Zone { return &d.extra }

func (d *Deck) resolve(id int) (*cards.Card, bool) {
	if d.lookup == nil {
		return nil, false
	}
	return d.lookup.Card(id)
}

// CanAdd reports whether the card with id may be added to the zone.
func (d *Deck) CanAdd(kind cards.Zone, id int) bool {
	z, err := d.Zone(kind)
	if err != nil {
		return false
	}
	c, ok := d.resolve(id)
	return ok && z.CanAdd(c)
}

// Add appends one copy of the card to the zone. It returns false, leaving
// the deck unchanged, when the id is unknown or CanAdd rejects it.
func (d *Deck) Add(kind cards.Zone, id int) bool {
	z, err := d.Zone(kind)
	if err != nil {
		return false
	}
	c, ok := d.resolve(id)
	if !ok {
		return false
	}
	return z.add(c)
}

// Remove drops the first copy of id from the zone.
func (d *Deck) Remove(kind cards.Zone, id int) bool {
	z, err := d.Zone(kind)
	if err != nil {
		return false
	}
	return z.remove(id)
}

// Clear empties the zone. Confirmation is the caller's job.
func (d *Deck) Clear(kind cards.Zone) error {
	z, err := d.Zone(kind)
	if err != nil {
		return err
	}
	z.clear()
	return nil
}

// replace swaps both zones at once.
func (d *Deck) replace(main, extra []*cards.Card) {
	d.main.cards = main
	d.extra.cards = extra
}
