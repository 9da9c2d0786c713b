package deck

import (
	"fmt"
	"strings"

	"github.com/youruser/deckapp/internal/cards"
)

// Size limits checked at export.
const (
	MainMin  = 30
	MainMax  = 60
	ExtraMax = 15
)

// ViolationKind names a size rule.
type ViolationKind string

const (
	MainTooLarge  ViolationKind = "main_over"
	MainTooSmall  ViolationKind = "main_under"
	ExtraTooLarge ViolationKind = "extra_over"
)

// Violation is one failed size rule.
type Violation struct {
	Kind  ViolationKind `json:"kind"`
	Zone  cards.Zone    `json:"zone"`
	Limit int           `json:"limit"`
	Count int           `json:"count"`
}

func (v Violation) String() string {
	switch v.Kind {
	case MainTooLarge:
		return fmt.Sprintf("main deck has more than %d cards (%d)", v.Limit, v.Count)
	case MainTooSmall:
		return fmt.Sprintf("main deck has fewer than %d cards (%d)", v.Limit, v.Count)
	case ExtraTooLarge:
		return fmt.Sprintf("extra deck has more than %d cards (%d)", v.Limit, v.Count)
	}
	return string(v.Kind)
}

// ValidationError carries every violation that blocked an export.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.String()
	}
	return "deck is not exportable: " + strings.Join(msgs, "; ")
}

// Validate checks the export size rules and reports all failures.
func (d *Deck) Validate() []Violation {
	var out []Violation
	if n := d.main.Len(); n > MainMax {
		out = append(out, Violation{Kind: MainTooLarge, Zone: cards.ZoneMain, Limit: MainMax, Count: n})
	}
	if n := d.main.Len(); n < MainMin {
		out = append(out, Violation{Kind: MainTooSmall, Zone: cards.ZoneMain, Limit: MainMin, Count: n})
	}
	if n := d.extra.Len(); n > ExtraMax {
		out = append(out, Violation{Kind: ExtraTooLarge, Zone: cards.ZoneExtra, Limit: ExtraMax, Count: n})
	}
	return out
}

// LimitStatus is how a zone size compares to its limits.
type LimitStatus string

const (
	StatusUnder LimitStatus = "under"
	StatusOK    LimitStatus = "ok"
	StatusOver  LimitStatus = "over"
)

// Limit is the nominal maximum size of a zone.
func Limit(kind cards.Zone) int {
	if kind == cards.ZoneExtra {
		return ExtraMax
	}
	return MainMax
}

// Status classifies a zone size. Only the main zone has a minimum.
func Status(kind cards.Zone, n int) LimitStatus {
	switch {
	case kind == cards.ZoneMain && n < MainMin:
		return StatusUnder
	case n > Limit(kind):
		return StatusOver
	}
	return StatusOK
}
