package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"venuebooking/internal/domain/booking"
	"venuebooking/internal/domain/venue"
	"venuebooking/internal/middleware"
)

const version = "1.0.0"

type Options struct {
	CORSAllowedOrigins []string
	// RequestLogging enables gin's access log.
	RequestLogging bool
}

// New wires repositories, services and handlers on top of db and returns the
// HTTP engine.
func New(db *gorm.DB, opts Options) *gin.Engine {
	venueHandler := venue.NewHandler(venue.NewService(venue.NewVenueRepository(db)))
	bookingHandler := booking.NewHandler(booking.NewService(booking.NewBookingRepository(db)))

	r := gin.New()
	if opts.RequestLogging {
		r.Use(gin.Logger())
	}
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(opts.CORSAllowedOrigins))

	r.GET("/health", health)
	r.GET("/", index)

	api := r.Group("/api")
	{
		venueHandler.RegisterRoutes(api)
		bookingHandler.RegisterRoutes(api)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not found",
			"message": fmt.Sprintf("Cannot %s %s", c.Request.Method, c.Request.URL.Path),
		})
	})

	return r
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Venue Booking API",
		"version": version,
		"endpoints": gin.H{
			"venues":   "/api/venues",
			"bookings": "/api/bookings",
			"health":   "/health",
		},
	})
}
