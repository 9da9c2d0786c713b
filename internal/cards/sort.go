package cards

import (
	"errors"
	"slices"
)

var ErrUnknownSortKey = errors.New("unknown sort key")

// SortKey selects the numeric value cards are ordered by.
type SortKey string

const (
	SortID      SortKey = "id"
	SortAttack  SortKey = "atk"
	SortDefense SortKey = "def"
	SortRelease SortKey = "release"
)

// Direction multiplies the comparison result.
type Direction int

const (
	Ascending  Direction = 1
	Descending Direction = -1
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// SortKeys lists the keys in button order.
var SortKeys = []SortKey{SortID, SortAttack, SortDefense, SortRelease}

// ParseSortKey validates a key name.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(s)
	if slices.Contains(SortKeys, k) {
		return k, nil
	}
	return "", ErrUnknownSortKey
}

// DefaultDirection is id ascending, stats and release descending.
func (k SortKey) DefaultDirection() Direction {
	if k == SortID {
		return Ascending
	}
	return Descending
}

// value extracts the numeric sort value of a card.
func (k SortKey) value(c *Card) int {
	switch k {
	case SortAttack:
		return c.Attack
	case SortDefense:
		return c.Defense
	case SortRelease:
		return c.Release
	default:
		return c.ID
	}
}

// SortState is the active key and direction.
type SortState struct {
	Key SortKey   `json:"key"`
	Dir Direction `json:"dir"`
}

// DefaultSortState orders by id ascending.
func DefaultSortState() SortState {
	return SortState{Key: SortID, Dir: Ascending}
}

// Select flips the direction when key is already active, otherwise switches
// to key with its default direction.
func (s *SortState) Select(key SortKey) {
	if s.Key == key {
		s.Dir = -s.Dir
		if s.Dir == 0 {
			s.Dir = key.DefaultDirection()
		}
		return
	}
	s.Key = key
	s.Dir = key.DefaultDirection()
}

// Compare returns -1, 0 or 1 comparing a and b by key, before direction.
func Compare(a, b *Card, key SortKey) int {
	va, vb := key.value(a), key.value(b)
	switch {
	case va < vb:
		return -1
	case va > vb:
		return 1
	}
	return 0
}

// Sort orders cards in place. Equal cards keep their relative order.
func Sort(cards []*Card, s SortState) {
	dir := s.Dir
	if dir == 0 {
		dir = s.Key.DefaultDirection()
	}
	slices.SortStableFunc(cards, func(a, b *Card) int {
		return Compare(a, b, s.Key) * int(dir)
	})
}
