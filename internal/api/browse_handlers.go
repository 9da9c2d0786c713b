package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/youruser/deckapp/internal/browse"
	"github.com/youruser/deckapp/internal/cards"
)

// apply runs one browser operation under the lock and writes the view.
func (s *Server) apply(c *gin.Context, op func(b *browse.Browser) browse.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := op(s.browser)
	c.JSON(http.StatusOK, s.viewLocked(v))
}

func (s *Server) currentView(c *gin.Context) {
	s.apply(c, func(b *browse.Browser) browse.View { return b.Refresh(browse.Preserve) })
}

type valueRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (s *Server) toggleValue(c *gin.Context) {
	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	field, err := cards.ParseField(req.Field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.apply(c, func(b *browse.Browser) browse.View { return b.ToggleValue(field, req.Value) })
}

func (s *Server) setCategory(c *gin.Context) {
	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.apply(c, func(b *browse.Browser) browse.View { return b.SetCategory(req.Value) })
}

func (s *Server) resetFilters(c *gin.Context) {
	s.apply(c, (*browse.Browser).ResetFilters)
}

func (s *Server) setSearch(c *gin.Context) {
	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.apply(c, func(b *browse.Browser) browse.View { return b.SetSearch(req.Value) })
}

func (s *Server) commitSearch(c *gin.Context) {
	s.apply(c, (*browse.Browser).CommitSearch)
}

func (s *Server) resetSearch(c *gin.Context) {
	s.apply(c, (*browse.Browser).ResetSearch)
}

func (s *Server) addTag(c *gin.Context) {
	var req struct {
		Tag string `json:"tag"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Tag == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tag is required"})
		return
	}
	s.apply(c, func(b *browse.Browser) browse.View { return b.AddTag(req.Tag) })
}

func (s *Server) removeTag(c *gin.Context) {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tag index"})
		return
	}
	s.apply(c, func(b *browse.Browser) browse.View { return b.RemoveTag(i) })
}

func (s *Server) selectSort(c *gin.Context) {
	var req struct {
		Key string `json:"key"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	key, err := cards.ParseSortKey(req.Key)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.apply(c, func(b *browse.Browser) browse.View { return b.SelectSort(key) })
}

func (s *Server) changePage(c *gin.Context) {
	var req struct {
		Page  *int `json:"page"`
		Delta *int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	switch {
	case req.Page != nil:
		s.apply(c, func(b *browse.Browser) browse.View { return b.GoToPage(*req.Page) })
	case req.Delta != nil:
		s.apply(c, func(b *browse.Browser) browse.View { return b.GoToPage(b.Page().Page + *req.Delta) })
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "page or delta is required"})
	}
}

func (s *Server) setLayout(c *gin.Context) {
	var req struct {
		PerPage  *int             `json:"per_page"`
		Geometry *browse.Geometry `json:"geometry"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	switch {
	case req.PerPage != nil:
		s.apply(c, func(b *browse.Browser) browse.View { return b.SetPerPage(*req.PerPage) })
	case req.Geometry != nil:
		s.apply(c, func(b *browse.Browser) browse.View { return b.SetGeometry(*req.Geometry) })
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "per_page or geometry is required"})
	}
}

func (s *Server) setTab(c *gin.Context) {
	var req struct {
		Zone string `json:"zone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	zone, ok := cards.ParseZone(req.Zone)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown zone"})
		return
	}
	s.apply(c, func(b *browse.Browser) browse.View { return b.SetTab(zone) })
}
