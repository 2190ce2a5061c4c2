package venue

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	venues := rg.Group("/venues")
	{
		venues.GET("", h.GetVenues)        // GET /api/venues?location=...&page=...
		venues.GET("/:id", h.GetVenueByID) // GET /api/venues/:id
	}
}
