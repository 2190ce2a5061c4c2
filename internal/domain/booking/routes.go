package booking

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the booking inquiry endpoints under rg.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.POST("", h.CreateBooking) // POST /api/bookings
		bookings.GET("", h.ListBookings)   // GET /api/bookings
		bookings.GET("/:id", h.GetBooking) // GET /api/bookings/:id
	}
}
