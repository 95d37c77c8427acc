package response

import (
	"time"

	"villabook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	RoomID          uuid.UUID `json:"room_id"`
	RoomName        string    `json:"room_name"`
	VillaName       string    `json:"villa_name"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   *string   `json:"customer_phone,omitempty"`
	CheckIn         string    `json:"check_in"`
	CheckOut        string    `json:"check_out"`
	Guests          int32     `json:"guests"`
	TotalPrice      float64   `json:"total_price"`
	Status          string    `json:"status"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

const dateLayout = "2006-01-02"

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              rm.ID,
		RoomID:          rm.RoomID,
		RoomName:        rm.RoomName,
		VillaName:       rm.VillaName,
		CustomerName:    rm.CustomerName,
		CustomerEmail:   rm.CustomerEmail,
		CustomerPhone:   rm.CustomerPhone,
		CheckIn:         rm.CheckIn.Format(dateLayout),
		CheckOut:        rm.CheckOut.Format(dateLayout),
		Guests:          rm.Guests,
		TotalPrice:      rm.TotalPrice,
		Status:          rm.Status,
		SpecialRequests: rm.SpecialRequests,
		CreatedAt:       rm.CreatedAt,
	}
}

func FromBookingViews(rms []*queries.BookingView) []*BookingResponse {
	result := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromBookingView(rm)
	}
	return result
}
