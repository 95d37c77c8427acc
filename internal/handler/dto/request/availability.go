package request

import (
	"time"

	"villabook/internal/domain/booking"

	"github.com/google/uuid"
)

type AvailabilityRequest struct {
	RoomID   uuid.UUID `json:"room_id" binding:"required"`
	CheckIn  string    `json:"check_in" binding:"required"`
	CheckOut string    `json:"check_out" binding:"required"`
}

func (r AvailabilityRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(booking.DateLayout, r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateFormat
	}
	checkOut, err = time.Parse(booking.DateLayout, r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateFormat
	}
	return checkIn, checkOut, nil
}
