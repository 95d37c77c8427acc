package request

import (
	"errors"
	"strings"
	"time"

	"villabook/internal/domain/booking"
	"villabook/internal/usecase/commands"

	"github.com/google/uuid"
)

var ErrInvalidDateFormat = errors.New("dates must be formatted as YYYY-MM-DD")

// CreateBookingRequest is the public booking form. Status is accepted so
// older clients that still send it keep working, but it is never honored:
// every created booking starts as pending.
type CreateBookingRequest struct {
	RoomID          uuid.UUID `json:"room_id" binding:"required"`
	CustomerName    string    `json:"customer_name" binding:"required"`
	CustomerEmail   string    `json:"customer_email" binding:"required"`
	CustomerPhone   *string   `json:"customer_phone,omitempty"`
	CheckIn         string    `json:"check_in" binding:"required"`
	CheckOut        string    `json:"check_out" binding:"required"`
	Guests          int       `json:"guests" binding:"required,min=1"`
	TotalPrice      float64   `json:"total_price" binding:"gte=0"`
	Status          *string   `json:"status,omitempty"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
}

func (r CreateBookingRequest) ToParams() (commands.CreateBookingParams, error) {
	checkIn, err := time.Parse(booking.DateLayout, r.CheckIn)
	if err != nil {
		return commands.CreateBookingParams{}, ErrInvalidDateFormat
	}
	checkOut, err := time.Parse(booking.DateLayout, r.CheckOut)
	if err != nil {
		return commands.CreateBookingParams{}, ErrInvalidDateFormat
	}

	return commands.CreateBookingParams{
		RoomID:          r.RoomID,
		CustomerName:    strings.TrimSpace(r.CustomerName),
		CustomerEmail:   strings.TrimSpace(r.CustomerEmail),
		CustomerPhone:   trimmedPtr(r.CustomerPhone),
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          r.Guests,
		TotalPrice:      r.TotalPrice,
		SpecialRequests: trimmedPtr(r.SpecialRequests),
	}, nil
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
