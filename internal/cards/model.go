package cards

import (
	"strconv"
	"strings"
)

// StatUnknown is the attack/defense value for "?" stats.
const StatUnknown = -1

// Card is one record of the card database. Cards are shared by pointer and
// never mutated after the repository is built.
type Card struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	ShortName   string   `json:"short_name"`
	Type        string   `json:"type"`
	Attribute   string   `json:"attribute"`
	Race        string   `json:"race"`
	Level       *int     `json:"level,omitempty"`
	Attack      int      `json:"atk"`
	Defense     int      `json:"def"`
	Gender      string   `json:"gender"`
	Description string   `json:"description"`
	Release     int      `json:"release"`
	Categories  []string `json:"categories"`
}

// Zone returns the deck zone the card belongs to.
func (c *Card) Zone() Zone {
	return ZoneOf(c.Type)
}

// Deckable reports whether the id is outside the reserved token range.
func (c *Card) Deckable() bool {
	return c.ID < ReservedIDFloor
}

// FieldValue returns the canonical string of a filterable field. An absent
// level is the empty string.
func (c *Card) FieldValue(f Field) string {
	switch f {
	case FieldType:
		return c.Type
	case FieldAttribute:
		return c.Attribute
	case FieldRace:
		return c.Race
	case FieldLevel:
		if c.Level == nil {
			return ""
		}
		return strconv.Itoa(*c.Level)
	case FieldGender:
		return c.Gender
	}
	return ""
}

// searchText is the haystack free-text terms are matched against.
func (c *Card) searchText() string {
	parts := make([]string, 0, 4+len(c.Categories))
	parts = append(parts, strconv.Itoa(c.ID), c.Name, c.ShortName, c.Description)
	parts = append(parts, c.Categories...)
	return strings.Join(parts, " ")
}

// StatText renders an attack or defense value for display.
func StatText(v int) string {
	if v == StatUnknown {
		return "?"
	}
	return strconv.Itoa(v)
}

func intPtr(v int) *int { return &v }
