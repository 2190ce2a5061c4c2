package booking

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

// CreateBooking handles POST /api/bookings.
func (h *Handler) CreateBooking(c *gin.Context) {
	var in CreateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Invalid booking inquiry data", []validator.FieldError{{
			Rule:    "json",
			Message: err.Error(),
		}})
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), in)
	if err != nil {
		var (
			verr *ValidationError
			cerr *CapacityError
		)
		switch {
		case errors.As(err, &verr):
			response.ErrorWithDetails(c, http.StatusBadRequest, "Invalid booking inquiry data", verr.Details)
		case errors.As(err, &cerr):
			response.ErrorWithMessage(c, http.StatusBadRequest, "Validation error", cerr.Error())
		case errors.Is(err, ErrVenueNotFound):
			response.Error(c, http.StatusNotFound, "Venue not found")
		case errors.Is(err, ErrNotAvailable):
			response.ErrorWithMessage(c, http.StatusConflict, "Venue not available", "The venue is already booked for the selected dates")
		default:
			response.Internal(c, err, "Failed to create booking inquiry")
		}
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, "Booking inquiry created successfully", toCreatedResponse(b))
}

// ListBookings handles GET /api/bookings.
func (h *Handler) ListBookings(c *gin.Context) {
	rows, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		response.Internal(c, err, "Failed to fetch bookings")
		return
	}

	out := make([]BookingResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toListItem(&rows[i]))
	}
	response.Success(c, http.StatusOK, out)
}

// GetBooking handles GET /api/bookings/:id.
func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.Error(c, http.StatusNotFound, "Booking inquiry not found")
			return
		}
		response.Internal(c, err, "Failed to fetch booking")
		return
	}
	response.Success(c, http.StatusOK, b)
}
