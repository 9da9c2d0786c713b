package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/youruser/deckapp/internal/browse"
	"github.com/youruser/deckapp/internal/cards"
	imagepkg "github.com/youruser/deckapp/internal/image"
)

// health reports the loaded card count and database version.
func (s *Server) health(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "cards": s.repo.Len(), "version": s.repo.Version()})
}

func (s *Server) facets(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"facets": cards.Facets(s.repo)})
}

type cardDetail struct {
	*cards.Card
	Color          string          `json:"color"`
	AttributeLabel string          `json:"attribute_label"`
	AttackText     string          `json:"atk_text"`
	DefenseText    string          `json:"def_text"`
	Zone           cards.Zone      `json:"zone"`
	Deckable       bool            `json:"deckable"`
	Keywords       []cards.Keyword `json:"keywords"`
}

func (s *Server) cardDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid card id"})
		return
	}
	s.mu.Lock()
	card, err := s.repo.Get(id)
	s.mu.Unlock()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cardDetail{
		Card:           card,
		Color:          cards.TypeColor(card.Type),
		AttributeLabel: cards.AttributeLabel(card.Attribute),
		AttackText:     cards.StatText(card.Attack),
		DefenseText:    cards.StatText(card.Defense),
		Zone:           card.Zone(),
		Deckable:       card.Deckable(),
		Keywords:       cards.KeywordList(card.Description),
	})
}

// qr endpoint returns a PNG of a QR for "text" query param
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil {
		size = v
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

type filterRequest struct {
	Filter  cards.FilterState `json:"filter"`
	Sort    string            `json:"sort"`
	Dir     string            `json:"dir"`
	Page    int               `json:"page"`
	PerPage int               `json:"per_page"`
	Tab     string            `json:"tab"`
}

// filterHandler runs a one-off query without touching the server state.
func (s *Server) filterHandler(c *gin.Context) {
	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	q := browse.Query{
		Filter: req.Filter,
		Sort:   cards.DefaultSortState(),
		Page:   browse.NewPagination(req.PerPage),
	}
	if req.PerPage == 0 {
		q.Page.SetPerPage(s.opts.PerPage)
	}
	q.Page.Page = max(req.Page, 1)
	if req.Sort != "" {
		key, err := cards.ParseSortKey(req.Sort)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		q.Sort = cards.SortState{Key: key, Dir: key.DefaultDirection()}
	}
	switch req.Dir {
	case "asc":
		q.Sort.Dir = cards.Ascending
	case "desc":
		q.Sort.Dir = cards.Descending
	}
	if req.Tab != "" {
		zone, ok := cards.ParseZone(req.Tab)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown tab"})
			return
		}
		q.Tab = zone
	}

	s.mu.Lock()
	repo := s.repo
	s.mu.Unlock()
	v := browse.GetView(repo, q)
	c.JSON(http.StatusOK, gin.H{"count": v.TotalCount, "view": v})
}
