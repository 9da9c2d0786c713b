package browse

import "github.com/youruser/deckapp/internal/cards"

// ChipKind says which constraint a chip removes.
type ChipKind string

const (
	ChipValue    ChipKind = "value"
	ChipCategory ChipKind = "category"
	ChipTag      ChipKind = "tag"
)

// Chip is one removable active-filter label.
type Chip struct {
	Kind  ChipKind    `json:"kind"`
	Label string      `json:"label"`
	Field cards.Field `json:"field,omitempty"`
	Value string      `json:"value,omitempty"`
	Index int         `json:"index"`
}

// ChipListener receives the chip list after every filter recomputation.
type ChipListener func(chips []Chip)

// Chips lists the active constraints of f: checked values in field order,
// then the category text, then each search tag.
func Chips(f cards.FilterState) []Chip {
	chips := []Chip{}
	for _, field := range cards.Fields {
		for _, v := range f.Values[field] {
			chips = append(chips, Chip{Kind: ChipValue, Label: v, Field: field, Value: v})
		}
	}
	if f.Category != "" {
		chips = append(chips, Chip{Kind: ChipCategory, Label: "Cat: " + f.Category, Value: f.Category})
	}
	for i, t := range f.Tags {
		chips = append(chips, Chip{Kind: ChipTag, Label: t, Value: t, Index: i})
	}
	return chips
}
