package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookify-backend-go/internal/core"
	"bookify-backend-go/internal/models"
)

// BookingHandler handles API endpoints for the booking lifecycle.
type BookingHandler struct {
	bookingService core.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bs core.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bs}
}

// ListBookings handles GET /bookings: the caller's own bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookingService.ListForOwner(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if bookings == nil {
		bookings = []*models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid request payload"})
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), callerID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// UpdateBooking handles PATCH /bookings/:id. The booking service decides
// which fields apply based on whether the caller is the owner or an admin.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var req models.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid request payload"})
		return
	}

	booking, err := h.bookingService.Update(c.Request.Context(), callerID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ListAllBookings handles GET /bookings/admin (admin).
func (h *BookingHandler) ListAllBookings(c *gin.Context) {
	bookings, err := h.bookingService.ListAll(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if bookings == nil {
		bookings = []*models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingStats handles GET /me/stats.
func (h *BookingHandler) GetBookingStats(c *gin.Context) {
	stats, err := h.bookingService.StatsForOwner(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
