package browse

import "math"

// DefaultPerPage is used until a layout reports its geometry.
const DefaultPerPage = 60

// listPadding is subtracted from the container height before rows are counted.
const listPadding = 12

// PageMode tells a view refresh what to do with the current page.
type PageMode int

const (
	// Reset goes back to page 1. Filter, search, sort and tab changes reset.
	Reset PageMode = iota
	// Preserve keeps the current page, clamped to the new page count.
	// Page navigation and layout changes preserve.
	Preserve
)

func (m PageMode) String() string {
	if m == Preserve {
		return "preserve"
	}
	return "reset"
}

// Pagination is the 1-based current page and the items shown per page.
type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// NewPagination starts on page 1 with perPage items (at least one).
func NewPagination(perPage int) Pagination {
	p := Pagination{Page: 1}
	p.SetPerPage(perPage)
	return p
}

// SetPerPage sets the page size, never below 1.
func (p *Pagination) SetPerPage(n int) {
	p.PerPage = max(1, n)
}

// Clamp moves the page into [1, TotalPages(total, PerPage)].
func (p *Pagination) Clamp(total int) {
	if p.PerPage < 1 {
		p.PerPage = 1
	}
	p.Page = min(p.Page, TotalPages(total, p.PerPage))
	p.Page = max(p.Page, 1)
}

// TotalPages is ceil(total/perPage), and 1 for an empty result.
func TotalPages(total, perPage int) int {
	perPage = max(1, perPage)
	if total <= 0 {
		return 1
	}
	return (total-1)/perPage + 1
}

// Slice returns page (1-based) of items. Out of range pages are empty.
func Slice[T any](items []T, page, perPage int) []T {
	perPage = max(1, perPage)
	start := (page - 1) * perPage
	if page < 1 || start >= len(items) {
		return []T{}
	}
	end := min(start+perPage, len(items))
	return items[start:end]
}

// Geometry describes the list container as measured by the view layer.
type Geometry struct {
	Height     int `json:"height"`
	ItemHeight int `json:"item_height"`
	Columns    int `json:"columns"`
}

// PerPage is the number of items that fit: full rows times columns, at
// least one. Unusable measurements yield 0 so callers keep their value.
func (g Geometry) PerPage() int {
	if g.Height <= 0 || g.ItemHeight <= 0 {
		return 0
	}
	cols := g.Columns
	if cols <= 0 {
		cols = 1
	}
	rows := (g.Height - listPadding) / g.ItemHeight
	if rows > 0 && rows > math.MaxInt/cols {
		return math.MaxInt
	}
	return max(1, rows*cols)
}
