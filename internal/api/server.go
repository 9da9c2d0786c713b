package api

import (
	"log/slog"
	"sync"

	"github.com/youruser/deckapp/internal/browse"
	"github.com/youruser/deckapp/internal/cards"
	"github.com/youruser/deckapp/internal/deck"
	imagepkg "github.com/youruser/deckapp/internal/image"
)

// Options configures a Server.
type Options struct {
	PerPage int
	ArtURL  string
	Sheet   imagepkg.SheetOptions
	QRSize  int
	Logger  *slog.Logger
}

// Server holds the catalog browser and the deck behind the HTTP API.
// Handlers run one engine operation at a time under mu.
type Server struct {
	mu      sync.Mutex
	repo    *cards.Repository
	browser *browse.Browser
	deck    *deck.Deck
	chips   []browse.Chip

	opts Options
	log  *slog.Logger
}

// NewServer wires a browser and an empty deck over repo. repo may be nil
// until data is available.
func NewServer(repo *cards.Repository, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	s := &Server{
		repo: repo,
		deck: deck.New(repo),
		opts: opts,
		log:  opts.Logger,
	}
	s.browser = browse.NewBrowser(repo, opts.PerPage)
	s.browser.OnChips(func(chips []browse.Chip) { s.chips = chips })
	s.browser.Refresh(browse.Reset)
	return s
}

// SetRepository swaps in reloaded card data. Deck contents are kept.
func (s *Server) SetRepository(repo *cards.Repository) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.repo = repo
	s.deck.SetLookup(repo)
	s.browser.SetRepository(repo)
	s.log.Info("card data swapped", "count", repo.Len(), "version", repo.Version())
}

type viewResponse struct {
	browse.View
	Chips  []browse.Chip     `json:"chips"`
	Filter cards.FilterState `json:"filter"`
	Sort   cards.SortState   `json:"sort"`
	Tab    cards.Zone        `json:"tab"`
}

// viewLocked snapshots the browser; s.mu must be held.
func (s *Server) viewLocked(v browse.View) viewResponse {
	return viewResponse{
		View:   v,
		Chips:  s.chips,
		Filter: s.browser.Filter(),
		Sort:   s.browser.Sort(),
		Tab:    s.browser.Tab(),
	}
}
