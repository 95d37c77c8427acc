package api

import (
	"errors"
	"net/http"

	reqdto "villabook/internal/handler/dto/request"
	resdto "villabook/internal/handler/dto/response"
	"villabook/internal/handler/httperr"
	"villabook/internal/usecase/commands"
	"villabook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TestSupportHandler backs the endpoints the end-to-end smoke script drives.
// The router only mounts it when ENABLE_TEST_ENDPOINTS is set.
type TestSupportHandler struct {
	bookingQueries  queries.BookingQueries
	bookingCommands commands.BookingCommands
}

func NewTestSupportHandler(bookingQueries queries.BookingQueries, bookingCommands commands.BookingCommands) *TestSupportHandler {
	return &TestSupportHandler{
		bookingQueries:  bookingQueries,
		bookingCommands: bookingCommands,
	}
}

// @Summary Check availability
// @Description Report whether a room is free for the requested dates
// @Tags test-support
// @Accept json
// @Produce json
// @Param request body reqdto.AvailabilityRequest true "Availability probe"
// @Success 200 {object} queries.AvailabilityResult
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /test/availability [post]
func (h *TestSupportHandler) CheckAvailability(c *gin.Context) {
	var req reqdto.AvailabilityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	result, err := h.bookingQueries.CheckAvailability(c.Request.Context(), req.RoomID, checkIn, checkOut)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Get booking
// @Description Fetch a single booking by ID
// @Tags test-support
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /test/bookings/{id} [get]
func (h *TestSupportHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	bookingRM, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound), errors.Is(err, queries.ErrStoreNotProvisioned):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(bookingRM))
}

// @Summary Delete test booking
// @Description Remove a booking created by the smoke script
// @Tags test-support
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /test/bookings/{id} [delete]
func (h *TestSupportHandler) DeleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	result, err := h.bookingCommands.CleanupTestBooking(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": result.Message,
	})
}
