//go:build unit

package builder

import (
	"time"

	"villabook/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID            uuid.UUID
	VillaID       uuid.UUID
	VillaName     string
	VillaLocation string
	Name          string
	Description   string
	PricePerNight float64
	MaxGuests     int32
	RoomType      string
	SizeSqm       int32
	Amenities     []string
	Images        []string
	IsAvailable   bool
	Rating        float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewRoomBuilder() *RoomBuilder {
	now := time.Now()
	return &RoomBuilder{
		ID:            uuid.New(),
		VillaID:       uuid.New(),
		VillaName:     "Demo Villa",
		VillaLocation: "Manchester",
		Name:          "Deluxe Double Room",
		Description:   "Spacious double room with garden view",
		PricePerNight: 85,
		MaxGuests:     2,
		RoomType:      "deluxe",
		SizeSqm:       28,
		Amenities:     []string{"WiFi", "TV", "Coffee Machine"},
		Images:        []string{},
		IsAvailable:   true,
		Rating:        4.6,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (r *RoomBuilder) WithPrice(price float64) *RoomBuilder {
	r.PricePerNight = price
	return r
}

func (r *RoomBuilder) WithRating(rating float64) *RoomBuilder {
	r.Rating = rating
	return r
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:            r.ID,
		VillaID:       r.VillaID,
		VillaName:     r.VillaName,
		VillaLocation: r.VillaLocation,
		Name:          r.Name,
		Description:   r.Description,
		PricePerNight: r.PricePerNight,
		MaxGuests:     r.MaxGuests,
		RoomType:      r.RoomType,
		SizeSqm:       r.SizeSqm,
		Amenities:     r.Amenities,
		Images:        r.Images,
		IsAvailable:   r.IsAvailable,
		Rating:        r.Rating,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
