package browse

import "github.com/youruser/deckapp/internal/cards"

// Query is everything a list view depends on.
type Query struct {
	Filter cards.FilterState `json:"filter"`
	Sort   cards.SortState   `json:"sort"`
	Page   Pagination        `json:"page"`
	// Tab restricts the list to cards of one deck zone. Empty means all.
	Tab cards.Zone `json:"tab,omitempty"`
}

// View is one page of the filtered and sorted catalog.
type View struct {
	Items       []*cards.Card `json:"items"`
	TotalCount  int           `json:"total_count"`
	TotalPages  int           `json:"total_pages"`
	CurrentPage int           `json:"current_page"`
	PerPage     int           `json:"per_page"`
	HasPrev     bool          `json:"has_prev"`
	HasNext     bool          `json:"has_next"`
}

// Matching returns the filtered and sorted cards of q, before pagination.
func Matching(repo *cards.Repository, q Query) []*cards.Card {
	list := cards.Filter(repo.All(), q.Filter)
	if q.Tab != "" {
		list = cards.InZone(list, q.Tab)
	}
	sortState := q.Sort
	if sortState.Key == "" {
		sortState = cards.DefaultSortState()
	}
	cards.Sort(list, sortState)
	return list
}

// GetView runs filter, zone restriction, sort and pagination. The page in q
// is clamped; the clamped page is reported in the view. A missing or empty
// repository gives an empty first page.
func GetView(repo *cards.Repository, q Query) View {
	list := Matching(repo, q)
	page := q.Page
	page.Clamp(len(list))
	return View{
		Items:       Slice(list, page.Page, page.PerPage),
		TotalCount:  len(list),
		TotalPages:  TotalPages(len(list), page.PerPage),
		CurrentPage: page.Page,
		PerPage:     page.PerPage,
		HasPrev:     page.Page > 1,
		HasNext:     page.Page < TotalPages(len(list), page.PerPage),
	}
}
