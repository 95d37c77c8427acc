//go:build unit

package builder

import (
	"time"

	reqdto "villabook/internal/handler/dto/request"
	"villabook/internal/usecase/commands"
	"villabook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	RoomID          uuid.UUID
	RoomName        string
	VillaName       string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   *string
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	TotalPrice      float64
	Status          string
	SpecialRequests *string
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	phone := "+44 161 555 0199"
	return &BookingBuilder{
		ID:            uuid.New(),
		RoomID:        uuid.New(),
		RoomName:      "Deluxe Double Room",
		VillaName:     "Demo Villa",
		CustomerName:  "Jordan Smith",
		CustomerEmail: "jordan@example.com",
		CustomerPhone: &phone,
		CheckIn:       time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Guests:        2,
		TotalPrice:    340,
		Status:        "pending",
		CreatedAt:     time.Now(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithRoomID(id uuid.UUID) *BookingBuilder {
	b.RoomID = id
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:          b.RoomID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		CheckIn:         b.CheckIn.Format("2006-01-02"),
		CheckOut:        b.CheckOut.Format("2006-01-02"),
		Guests:          b.Guests,
		TotalPrice:      b.TotalPrice,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *BookingBuilder) BuildCreateParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		RoomID:          b.RoomID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Guests:          b.Guests,
		TotalPrice:      b.TotalPrice,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:              b.ID,
		RoomID:          b.RoomID,
		RoomName:        b.RoomName,
		VillaName:       b.VillaName,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Guests:          int32(b.Guests),
		TotalPrice:      b.TotalPrice,
		Status:          b.Status,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
	}
}
