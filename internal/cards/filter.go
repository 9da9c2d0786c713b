package cards

import (
	"errors"
	"slices"
	"strings"
)

var ErrUnknownField = errors.New("unknown filter field")

// Field is a filterable card attribute.
type Field string

const (
	FieldType      Field = "type"
	FieldAttribute Field = "attribute"
	FieldRace      Field = "race"
	FieldLevel     Field = "level"
	FieldGender    Field = "gender"
)

// Fields lists the filterable fields in panel order.
var Fields = []Field{FieldType, FieldAttribute, FieldRace, FieldLevel, FieldGender}

// ParseField validates a field name.
func ParseField(s string) (Field, error) {
	f := Field(s)
	if slices.Contains(Fields, f) {
		return f, nil
	}
	return "", ErrUnknownField
}

// FilterState is the active predicate set. Values within a field are ORed,
// fields are ANDed; the live search text and every tag must all match.
type FilterState struct {
	Values   map[Field][]string `json:"values,omitempty"`
	Category string             `json:"category,omitempty"`
	Search   string             `json:"search,omitempty"`
	Tags     []string           `json:"tags,omitempty"`
}

// Toggle checks or unchecks one accepted value of a field.
func (f *FilterState) Toggle(field Field, value string) {
	if f.Values == nil {
		f.Values = make(map[Field][]string)
	}
	vals := f.Values[field]
	if i := slices.Index(vals, value); i >= 0 {
		vals = slices.Delete(vals, i, i+1)
	} else {
		vals = append(vals, value)
	}
	if len(vals) == 0 {
		delete(f.Values, field)
		return
	}
	f.Values[field] = vals
}

// Checked reports whether value is accepted for field.
func (f *FilterState) Checked(field Field, value string) bool {
	return slices.Contains(f.Values[field], value)
}

// SetCategory sets the category substring constraint.
func (f *FilterState) SetCategory(text string) {
	f.Category = strings.TrimSpace(text)
}

// SetSearch sets the live search box value.
func (f *FilterState) SetSearch(text string) {
	f.Search = text
}

// CommitSearch turns the search box value into a tag and clears the box.
// It returns false when the box is blank.
func (f *FilterState) CommitSearch() bool {
	v := strings.TrimSpace(f.Search)
	if v == "" {
		return false
	}
	f.Tags = append(f.Tags, v)
	f.Search = ""
	return true
}

// AddTag appends a committed search tag.
func (f *FilterState) AddTag(tag string) bool {
	if tag == "" {
		return false
	}
	f.Tags = append(f.Tags, tag)
	return true
}

// RemoveTag drops the tag at index i.
func (f *FilterState) RemoveTag(i int) bool {
	if i < 0 || i >= len(f.Tags) {
		return false
	}
	f.Tags = slices.Delete(f.Tags, i, i+1)
	return true
}

// ResetFilters clears field values and the category constraint.
func (f *FilterState) ResetFilters() {
	f.Values = nil
	f.Category = ""
}

// ResetSearch clears the search box and every tag.
func (f *FilterState) ResetSearch() {
	f.Search = ""
	f.Tags = nil
}

// Clone returns a deep copy.
func (f FilterState) Clone() FilterState {
	out := FilterState{Category: f.Category, Search: f.Search, Tags: slices.Clone(f.Tags)}
	if len(f.Values) > 0 {
		out.Values = make(map[Field][]string, len(f.Values))
		for k, v := range f.Values {
			out.Values[k] = slices.Clone(v)
		}
	}
	return out
}

// terms returns every active free-text term.
func (f *FilterState) terms() []string {
	terms := make([]string, 0, len(f.Tags)+1)
	if s := strings.TrimSpace(f.Search); s != "" {
		terms = append(terms, s)
	}
	return append(terms, f.Tags...)
}

// MatchesText reports whether term occurs in the card's searchable text:
// id, name, short name, description and categories.
func MatchesText(c *Card, term string) bool {
	return strings.Contains(c.searchText(), term)
}

// Matches evaluates the card against the filter state.
func Matches(c *Card, f FilterState) bool {
	for field, accepted := range f.Values {
		if len(accepted) == 0 {
			continue
		}
		if !slices.Contains(accepted, c.FieldValue(field)) {
			return false
		}
	}
	if cat := strings.TrimSpace(f.Category); cat != "" {
		if !slices.ContainsFunc(c.Categories, func(s string) bool {
			return strings.Contains(s, cat)
		}) {
			return false
		}
	}
	terms := f.terms()
	if len(terms) == 0 {
		return true
	}
	text := c.searchText()
	for _, t := range terms {
		if !strings.Contains(text, t) {
			return false
		}
	}
	return true
}

// Filter returns the cards matching f, keeping their input order.
func Filter(cards []*Card, f FilterState) []*Card {
	out := make([]*Card, 0, len(cards))
	for _, c := range cards {
		if Matches(c, f) {
			out = append(out, c)
		}
	}
	return out
}

// InZone keeps the cards that belong to zone.
func InZone(cards []*Card, zone Zone) []*Card {
	out := make([]*Card, 0, len(cards))
	for _, c := range cards {
		if c.Zone() == zone {
			out = append(out, c)
		}
	}
	return out
}
