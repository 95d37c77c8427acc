package api

import (
	"net/http"

	resdto "villabook/internal/handler/dto/response"
	"villabook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the dashboard listings. The listings never fail: store
// errors are swallowed upstream and surface here as empty arrays.
type AdminHandler struct {
	adminQueries queries.AdminQueries
}

func NewAdminHandler(adminQueries queries.AdminQueries) *AdminHandler {
	return &AdminHandler{adminQueries: adminQueries}
}

// @Summary List villas
// @Description All villas, newest first
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.VillaResponse
// @Router /admin/villas [get]
func (h *AdminHandler) ListVillas(c *gin.Context) {
	villas, _ := h.adminQueries.Villas(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromVillaViews(villas))
}

// @Summary List rooms
// @Description All rooms, newest first
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /admin/rooms [get]
func (h *AdminHandler) ListRooms(c *gin.Context) {
	rooms, _ := h.adminQueries.Rooms(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromRoomViews(rooms))
}

// @Summary List bookings
// @Description Most recent bookings, capped at 50
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, _ := h.adminQueries.Bookings(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromBookingViews(bookings))
}
