package cards

import (
	"errors"
	"slices"
)

var (
	ErrCardNotFound = errors.New("card not found")
	ErrNoData       = errors.New("no card data found")
)

// Repository is the loaded, read-only card collection ordered by id.
// A nil *Repository behaves as an empty one.
type Repository struct {
	cards   []*Card
	byID    map[int]*Card
	version string
}

// NewRepository builds a repository from the loaded records. Records are
// ordered by id; a repeated id keeps its first record and duplicate
// categories are collapsed.
func NewRepository(records []Card, version string) *Repository {
	r := &Repository{
		cards:   make([]*Card, 0, len(records)),
		byID:    make(map[int]*Card, len(records)),
		version: version,
	}
	for i := range records {
		c := records[i]
		if _, dup := r.byID[c.ID]; dup {
			continue
		}
		c.Categories = uniqueStrings(c.Categories)
		r.byID[c.ID] = &c
		r.cards = append(r.cards, &c)
	}
	slices.SortStableFunc(r.cards, func(a, b *Card) int {
		return a.ID - b.ID
	})
	return r
}

// All returns every card in id order. The slice is a copy; the cards are not.
func (r *Repository) All() []*Card {
	if r == nil {
		return nil
	}
	return slices.Clone(r.cards)
}

// Len returns the number of cards.
func (r *Repository) Len() int {
	if r == nil {
		return 0
	}
	return len(r.cards)
}

// Card looks a card up by id.
func (r *Repository) Card(id int) (*Card, bool) {
	if r == nil {
		return nil, false
	}
	c, ok := r.byID[id]
	return c, ok
}

// Get is Card with an error for callers that report misses.
func (r *Repository) Get(id int) (*Card, error) {
	c, ok := r.Card(id)
	if !ok {
		return nil, ErrCardNotFound
	}
	return c, nil
}

// Version is the database version from the metadata table, if any.
func (r *Repository) Version() string {
	if r == nil {
		return ""
	}
	return r.version
}

func uniqueStrings(in []string) []string {
	if len(in) == 0 {
		return []string{}
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
