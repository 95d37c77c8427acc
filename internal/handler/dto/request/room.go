package request

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"villabook/internal/domain/booking"
	"villabook/internal/domain/room"
	"villabook/internal/usecase/queries"
)

var (
	ErrInvalidGuestsParam = errors.New("guests must be a positive integer")
	ErrInvalidPriceParam  = errors.New("min_price and max_price must be numbers")
	ErrInvalidRoomType    = errors.New("unknown room_type")
)

// RoomSearchQuery mirrors the listing page's query string. Everything is
// optional; a malformed value is a 400, never silently dropped.
type RoomSearchQuery struct {
	CheckIn   string   `form:"check_in"`
	CheckOut  string   `form:"check_out"`
	Guests    string   `form:"guests"`
	VillaName string   `form:"villa_name"`
	MinPrice  string   `form:"min_price"`
	MaxPrice  string   `form:"max_price"`
	RoomType  string   `form:"room_type"`
	Amenities []string `form:"amenities"`
}

func (q RoomSearchQuery) ToFilters() (queries.RoomSearchFilters, error) {
	var filters queries.RoomSearchFilters

	if q.CheckIn != "" {
		t, err := time.Parse(booking.DateLayout, q.CheckIn)
		if err != nil {
			return filters, ErrInvalidDateFormat
		}
		filters.CheckIn = &t
	}
	if q.CheckOut != "" {
		t, err := time.Parse(booking.DateLayout, q.CheckOut)
		if err != nil {
			return filters, ErrInvalidDateFormat
		}
		filters.CheckOut = &t
	}
	if q.Guests != "" {
		n, err := strconv.Atoi(q.Guests)
		if err != nil || n < 1 {
			return filters, ErrInvalidGuestsParam
		}
		filters.Guests = &n
	}
	if name := strings.TrimSpace(q.VillaName); name != "" {
		filters.VillaName = &name
	}
	if q.MinPrice != "" {
		v, err := strconv.ParseFloat(q.MinPrice, 64)
		if err != nil {
			return filters, ErrInvalidPriceParam
		}
		filters.MinPrice = &v
	}
	if q.MaxPrice != "" {
		v, err := strconv.ParseFloat(q.MaxPrice, 64)
		if err != nil {
			return filters, ErrInvalidPriceParam
		}
		filters.MaxPrice = &v
	}
	if q.RoomType != "" {
		t, err := room.ParseType(q.RoomType)
		if err != nil {
			return filters, ErrInvalidRoomType
		}
		s := t.String()
		filters.RoomType = &s
	}
	for _, a := range q.Amenities {
		if trimmed := strings.TrimSpace(a); trimmed != "" {
			filters.Amenities = append(filters.Amenities, trimmed)
		}
	}

	return filters, nil
}
