package api

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/youruser/deckapp/internal/cards"
	"github.com/youruser/deckapp/internal/deck"
	imagepkg "github.com/youruser/deckapp/internal/image"
)

func zoneParam(c *gin.Context) (cards.Zone, bool) {
	zone, ok := cards.ParseZone(c.Param("zone"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": deck.ErrUnknownZone.Error()})
	}
	return zone, ok
}

func (s *Server) zoneView(c *gin.Context) {
	zone, ok := zoneParam(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, _ := s.deck.View(zone)
	c.JSON(http.StatusOK, v)
}

func (s *Server) addCard(c *gin.Context) {
	zone, ok := zoneParam(c)
	if !ok {
		return
	}
	var req struct {
		ID int `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	added := s.deck.Add(zone, req.ID)
	if !added {
		s.log.Debug("card not added", "zone", zone, "id", req.ID)
	}
	v, _ := s.deck.View(zone)
	c.JSON(http.StatusOK, gin.H{"added": added, "deck": v})
}

func (s *Server) removeCard(c *gin.Context) {
	zone, ok := zoneParam(c)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid card id"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := s.deck.Remove(zone, id)
	v, _ := s.deck.View(zone)
	c.JSON(http.StatusOK, gin.H{"removed": removed, "deck": v})
}

// clearZone empties a zone. The client must confirm with ?confirm=true.
func (s *Server) clearZone(c *gin.Context) {
	zone, ok := zoneParam(c)
	if !ok {
		return
	}
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusConflict, gin.H{"error": "clearing a zone needs confirm=true"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.deck.Clear(zone); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.log.Info("deck zone cleared", "zone", zone)
	v, _ := s.deck.View(zone)
	c.JSON(http.StatusOK, v)
}

// exportLocked encodes the deck or writes the violations; s.mu must be held.
func (s *Server) exportLocked(c *gin.Context) (string, bool) {
	text, err := s.deck.Export()
	var verr *deck.ValidationError
	if errors.As(err, &verr) {
		s.log.Info("deck export refused", "violations", len(verr.Violations))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Error(), "violations": verr.Violations})
		return "", false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return "", false
	}
	return text, true
}

func (s *Server) exportDeck(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text, ok := s.exportLocked(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", `attachment; filename="deck.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

func (s *Server) importDeck(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rep := s.deck.Import(string(body))
	s.log.Info("deck imported", "main", rep.Main, "extra", rep.Extra, "unresolved", rep.Unresolved, "rejected", rep.Rejected)
	mainView, _ := s.deck.View(cards.ZoneMain)
	extraView, _ := s.deck.View(cards.ZoneExtra)
	c.JSON(http.StatusOK, gin.H{"report": rep, "main": mainView, "extra": extraView})
}

func (s *Server) deckQR(c *gin.Context) {
	s.mu.Lock()
	text, ok := s.exportLocked(c)
	s.mu.Unlock()
	if !ok {
		return
	}
	size := s.opts.QRSize
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

// deckImage renders both zones as a sheet. Card art is fetched best-effort
// outside the lock; the QR code is only added when the deck is exportable.
func (s *Server) deckImage(c *gin.Context) {
	s.mu.Lock()
	mainView, _ := s.deck.View(cards.ZoneMain)
	extraView, _ := s.deck.View(cards.ZoneExtra)
	text, exportErr := s.deck.Export()
	s.mu.Unlock()

	var qr image.Image
	if exportErr == nil {
		if img, err := imagepkg.GenerateQRImage(text, s.opts.QRSize); err == nil {
			qr = img
		}
	}
	out := imagepkg.ComposeDeckSheet(s.tiles(c, mainView.Groups), s.tiles(c, extraView.Groups), qr, s.opts.Sheet)

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, out); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) tiles(c *gin.Context, groups []deck.Group) []imagepkg.Tile {
	tiles := make([]imagepkg.Tile, 0, len(groups))
	for _, g := range groups {
		t := imagepkg.Tile{Color: cards.TypeColor(g.Card.Type), Count: g.Count}
		if url := imagepkg.ArtURL(s.opts.ArtURL, g.Card.ID); url != "" {
			img, err := imagepkg.DownloadImage(c.Request.Context(), url)
			if err != nil {
				s.log.Debug("card art download failed", "id", g.Card.ID, "error", err)
			} else {
				t.Art = img
			}
		}
		tiles = append(tiles, t)
	}
	return tiles
}
