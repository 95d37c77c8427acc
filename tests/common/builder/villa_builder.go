//go:build unit

package builder

import (
	"time"

	"villabook/internal/usecase/queries"

	"github.com/google/uuid"
)

type VillaBuilder struct {
	ID          uuid.UUID
	Name        string
	Description string
	Location    string
	Address     string
	Amenities   []string
	Images      []string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewVillaBuilder() *VillaBuilder {
	now := time.Now()
	return &VillaBuilder{
		ID:          uuid.New(),
		Name:        "Demo Villa",
		Description: "Boutique villa near the city centre",
		Location:    "Manchester",
		Address:     "1 Canal Street, Manchester",
		Amenities:   []string{"Pool", "Garden", "Parking"},
		Images:      []string{},
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (v *VillaBuilder) BuildView() *queries.VillaView {
	return &queries.VillaView{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Location:    v.Location,
		Address:     v.Address,
		Amenities:   v.Amenities,
		Images:      v.Images,
		IsActive:    v.IsActive,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}
