package queries

import (
	"time"

	"github.com/google/uuid"
)

// Fixed demonstration rooms substituted when the rooms table has not been
// provisioned yet, so the site stays demonstrable on an empty deployment.
// IDs are stable so a smoke script can reference them across requests.
var (
	demoVillaID = uuid.MustParse("00000000-0000-0000-0000-00000000d077")

	demoRoomIDs = [3]uuid.UUID{
		uuid.MustParse("00000000-0000-0000-0000-0000000000d1"),
		uuid.MustParse("00000000-0000-0000-0000-0000000000d2"),
		uuid.MustParse("00000000-0000-0000-0000-0000000000d3"),
	}
)

func DemoRooms(now time.Time) []*RoomView {
	return []*RoomView{
		{
			ID:            demoRoomIDs[0],
			VillaID:       demoVillaID,
			VillaName:     "Demo Villa",
			VillaLocation: "Manchester",
			Name:          "Deluxe Double Room",
			Description:   "Spacious double room with modern amenities, perfect for couples visiting Manchester.",
			PricePerNight: 85,
			MaxGuests:     2,
			RoomType:      "deluxe",
			SizeSqm:       28,
			Amenities:     []string{"Free WiFi", "Private Bathroom", "Air Conditioning", "TV"},
			Images:        []string{"/placeholder.svg?height=400&width=600"},
			IsAvailable:   true,
			Rating:        4.5,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            demoRoomIDs[1],
			VillaID:       demoVillaID,
			VillaName:     "Demo Villa",
			VillaLocation: "Manchester",
			Name:          "Twin Room",
			Description:   "Comfortable twin room ideal for friends or colleagues. Two single beds with all conveniences.",
			PricePerNight: 75,
			MaxGuests:     2,
			RoomType:      "standard",
			SizeSqm:       24,
			Amenities:     []string{"Free WiFi", "Private Bathroom", "TV"},
			Images:        []string{"/placeholder.svg?height=400&width=600"},
			IsAvailable:   true,
			Rating:        4.2,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            demoRoomIDs[2],
			VillaID:       demoVillaID,
			VillaName:     "Demo Villa",
			VillaLocation: "Manchester",
			Name:          "Superior Single Room",
			Description:   "Perfect for solo travellers, this single room offers comfort and convenience.",
			PricePerNight: 65,
			MaxGuests:     1,
			RoomType:      "standard",
			SizeSqm:       18,
			Amenities:     []string{"Free WiFi", "Private Bathroom", "TV"},
			Images:        []string{"/placeholder.svg?height=400&width=600"},
			IsAvailable:   true,
			Rating:        4.0,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
}
