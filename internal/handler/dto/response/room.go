package response

import (
	"time"

	"villabook/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
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

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:            rm.ID,
		VillaID:       rm.VillaID,
		VillaName:     rm.VillaName,
		VillaLocation: rm.VillaLocation,
		Name:          rm.Name,
		Description:   rm.Description,
		PricePerNight: rm.PricePerNight,
		MaxGuests:     rm.MaxGuests,
		RoomType:      rm.RoomType,
		SizeSqm:       rm.SizeSqm,
		Amenities:     rm.Amenities,
		Images:        rm.Images,
		IsAvailable:   rm.IsAvailable,
		Rating:        rm.Rating,
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
	}
}

func FromRoomViews(rms []*queries.RoomView) []*RoomResponse {
	result := make([]*RoomResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromRoomView(rm)
	}
	return result
}
