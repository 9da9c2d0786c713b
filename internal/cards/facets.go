package cards

import (
	"slices"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Facet is the list of values a field can be filtered on.
type Facet struct {
	Field  Field    `json:"field"`
	Values []string `json:"values"`
}

// Facets lists, for every filterable field, the distinct values present in
// the repository. Absent values are left out. Numeric values are ordered
// numerically, everything else with Japanese collation.
func Facets(r *Repository) []Facet {
	out := make([]Facet, 0, len(Fields))
	for _, f := range Fields {
		out = append(out, Facet{Field: f, Values: facetValues(r, f)})
	}
	return out
}

func facetValues(r *Repository, f Field) []string {
	seen := make(map[string]struct{})
	values := []string{}
	for _, c := range r.All() {
		v := c.FieldValue(f)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}

	col := collate.New(language.Japanese)
	slices.SortFunc(values, func(a, b string) int {
		na, errA := strconv.Atoi(a)
		nb, errB := strconv.Atoi(b)
		if errA == nil && errB == nil {
			return na - nb
		}
		return col.CompareString(a, b)
	})
	return values
}
