package api

import "github.com/gin-gonic/gin"

func (s *Server) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.GET("/facets", s.facets)
		api.GET("/cards/:id", s.cardDetail)
		api.GET("/qr", qrHandler)
		api.POST("/filter", s.filterHandler)

		api.GET("/view", s.currentView)
		api.POST("/filters/toggle", s.toggleValue)
		api.PUT("/filters/category", s.setCategory)
		api.POST("/filters/reset", s.resetFilters)
		api.PUT("/search", s.setSearch)
		api.POST("/search/commit", s.commitSearch)
		api.POST("/search/reset", s.resetSearch)
		api.POST("/tags", s.addTag)
		api.DELETE("/tags/:index", s.removeTag)
		api.POST("/sort", s.selectSort)
		api.POST("/page", s.changePage)
		api.PUT("/layout", s.setLayout)
		api.PUT("/tab", s.setTab)

		api.GET("/deck/export", s.exportDeck)
		api.POST("/deck/import", s.importDeck)
		api.GET("/deck/qr", s.deckQR)
		api.GET("/deck/image", s.deckImage)
		api.GET("/deck/zones/:zone", s.zoneView)
		api.POST("/deck/zones/:zone/cards", s.addCard)
		api.DELETE("/deck/zones/:zone/cards/:id", s.removeCard)
		api.DELETE("/deck/zones/:zone", s.clearZone)
	}
}
