package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type RoomView struct {
	ID            uuid.UUID `json:"id"`
	VillaID       uuid.UUID `json:"villa_id"`
	VillaName     string    `json:"villa_name"`
	VillaLocation string    `json:"villa_location"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PricePerNight float64   `json:"price_per_night"`
	MaxGuests     int32     `json:"max_guests"`
	RoomType      string    `json:"room_type"`
	SizeSqm       int32     `json:"size_sqm"`
	Amenities     []string  `json:"amenities"`
	Images        []string  `json:"images"`
	IsAvailable   bool      `json:"is_available"`
	Rating        float64   `json:"rating"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type VillaView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Address     string    `json:"address"`
	Amenities   []string  `json:"amenities"`
	Images      []string  `json:"images"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	RoomID          uuid.UUID `json:"room_id"`
	RoomName        string    `json:"room_name"`
	VillaName       string    `json:"villa_name"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   *string   `json:"customer_phone,omitempty"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	Guests          int32     `json:"guests"`
	TotalPrice      float64   `json:"total_price"`
	Status          string    `json:"status"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// RoomSearchFilters carries the optional search criteria. A nil field is
// absent and contributes nothing to the predicate; there is no
// zero-value filtering.
type RoomSearchFilters struct {
	CheckIn   *time.Time
	CheckOut  *time.Time
	Guests    *int
	VillaName *string
	MinPrice  *float64
	MaxPrice  *float64
	RoomType  *string
	Amenities []string
}

// HasDateRange reports whether both dates are supplied; a lone check-in or
// check-out is ignored by the availability exclusion.
func (f RoomSearchFilters) HasDateRange() bool {
	return f.CheckIn != nil && f.CheckOut != nil
}

type AvailabilityResult struct {
	Available           bool   `json:"available"`
	ConflictingBookings int64  `json:"conflicting_bookings"`
	Message             string `json:"message"`
}
