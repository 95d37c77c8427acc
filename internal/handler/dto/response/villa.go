package response

import (
	"time"

	"villabook/internal/usecase/queries"

	"github.com/google/uuid"
)

type VillaResponse struct {
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

func FromVillaView(rm *queries.VillaView) *VillaResponse {
	return &VillaResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		Description: rm.Description,
		Location:    rm.Location,
		Address:     rm.Address,
		Amenities:   rm.Amenities,
		Images:      rm.Images,
		IsActive:    rm.IsActive,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

func FromVillaViews(rms []*queries.VillaView) []*VillaResponse {
	result := make([]*VillaResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromVillaView(rm)
	}
	return result
}
