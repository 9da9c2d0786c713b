package browse

import (
	"github.com/youruser/deckapp/internal/cards"
)

// Browser owns the list state of one catalog window: filters, sort, page
// and the deck tab. Every mutation recomputes the view before returning it.
// A Browser is not safe for concurrent use.
type Browser struct {
	repo      *cards.Repository
	filter    cards.FilterState
	sort      cards.SortState
	page      Pagination
	tab       cards.Zone
	listeners []ChipListener
	view      View
}

// NewBrowser starts on the main tab, sorted by id, page 1.
func NewBrowser(repo *cards.Repository, perPage int) *Browser {
	b := &Browser{
		repo: repo,
		sort: cards.DefaultSortState(),
		page: NewPagination(perPage),
		tab:  cards.ZoneMain,
	}
	b.Refresh(Reset)
	return b
}

// OnChips registers a listener for the active chip list.
func (b *Browser) OnChips(l ChipListener) {
	b.listeners = append(b.listeners, l)
}

// Refresh recomputes the view. The chip list is emitted after filtering.
func (b *Browser) Refresh(mode PageMode) View {
	if mode == Reset {
		b.page.Page = 1
	}
	b.view = GetView(b.repo, b.Query())
	b.page.Page = b.view.CurrentPage

	chips := Chips(b.filter)
	for _, l := range b.listeners {
		l(chips)
	}
	return b.view
}

// Query snapshots the current state.
func (b *Browser) Query() Query {
	return Query{Filter: b.filter.Clone(), Sort: b.sort, Page: b.page, Tab: b.tab}
}

// View is the last computed view.
func (b *Browser) View() View { return b.view }

func (b *Browser) Filter() cards.FilterState { return b.filter.Clone() }
func (b *Browser) Sort() cards.SortState     { return b.sort }
func (b *Browser) Page() Pagination          { return b.page }
func (b *Browser) Tab() cards.Zone           { return b.tab }

// SetRepository swaps in a reloaded repository, keeping the page if it
// still exists.
func (b *Browser) SetRepository(repo *cards.Repository) View {
	b.repo = repo
	return b.Refresh(Preserve)
}

func (b *Browser) ToggleValue(field cards.Field, value string) View {
	b.filter.Toggle(field, value)
	return b.Refresh(Reset)
}

func (b *Browser) SetCategory(text string) View {
	b.filter.SetCategory(text)
	return b.Refresh(Reset)
}

func (b *Browser) SetSearch(text string) View {
	b.filter.SetSearch(text)
	return b.Refresh(Reset)
}

// CommitSearch moves the search box text into the tag list. A blank box
// leaves the view untouched.
func (b *Browser) CommitSearch() View {
	if !b.filter.CommitSearch() {
		return b.view
	}
	return b.Refresh(Reset)
}

// AddTag commits a tag directly, as when a category or keyword is picked.
func (b *Browser) AddTag(tag string) View {
	if !b.filter.AddTag(tag) {
		return b.view
	}
	return b.Refresh(Reset)
}

func (b *Browser) RemoveTag(i int) View {
	if !b.filter.RemoveTag(i) {
		return b.view
	}
	return b.Refresh(Reset)
}

// RemoveChip drops the constraint a chip stands for.
func (b *Browser) RemoveChip(c Chip) View {
	switch c.Kind {
	case ChipValue:
		if b.filter.Checked(c.Field, c.Value) {
			b.filter.Toggle(c.Field, c.Value)
		}
	case ChipCategory:
		b.filter.SetCategory("")
	case ChipTag:
		b.filter.RemoveTag(c.Index)
	}
	return b.Refresh(Reset)
}

func (b *Browser) ResetFilters() View {
	b.filter.ResetFilters()
	return b.Refresh(Reset)
}

func (b *Browser) ResetSearch() View {
	b.filter.ResetSearch()
	return b.Refresh(Reset)
}

func (b *Browser) SelectSort(key cards.SortKey) View {
	b.sort.Select(key)
	return b.Refresh(Reset)
}

// SetTab switches the list to the cards of another deck zone.
func (b *Browser) SetTab(zone cards.Zone) View {
	b.tab = zone
	return b.Refresh(Reset)
}

func (b *Browser) GoToPage(page int) View {
	b.page.Page = page
	return b.Refresh(Preserve)
}

func (b *Browser) NextPage() View { return b.GoToPage(b.page.Page + 1) }
func (b *Browser) PrevPage() View { return b.GoToPage(b.page.Page - 1) }

// SetPerPage applies a recomputed page size.
func (b *Browser) SetPerPage(n int) View {
	b.page.SetPerPage(n)
	return b.Refresh(Preserve)
}

// SetGeometry recomputes the page size from layout measurements. Unusable
// measurements keep the current size.
func (b *Browser) SetGeometry(g Geometry) View {
	if n := g.PerPage(); n > 0 {
		b.page.SetPerPage(n)
	}
	return b.Refresh(Preserve)
}
