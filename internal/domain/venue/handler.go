package venue

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"venuebooking/internal/pkg/response"
	"venuebooking/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetVenues handles GET /api/venues?location=&minCapacity=&maxPricePerNight=&page=&limit=
func (h *Handler) GetVenues(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Invalid query parameters", []validator.FieldError{{
			Rule:    "type",
			Message: err.Error(),
		}})
		return
	}

	result, err := h.service.ListVenues(c.Request.Context(), q)
	if err != nil {
		var qerr *QueryError
		if errors.As(err, &qerr) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "Invalid query parameters", qerr.Details)
			return
		}
		response.Internal(c, err, "Failed to fetch venues")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetVenueByID handles GET /api/venues/:id.
func (h *Handler) GetVenueByID(c *gin.Context) {
	v, err := h.service.GetVenue(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			response.Error(c, http.StatusNotFound, "Venue not found")
			return
		}
		response.Internal(c, err, "Failed to fetch venue")
		return
	}

	response.Success(c, http.StatusOK, v)
}
