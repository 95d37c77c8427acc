package readstore

import (
	"context"

	"villabook/internal/infra"
	"villabook/internal/infra/db"
	"villabook/internal/usecase/queries"
)

type VillaReadStore struct {
	db db.DBTX
}

func NewVillaReadStore(dbtx db.DBTX) *VillaReadStore {
	return &VillaReadStore{db: dbtx}
}

func (v *VillaReadStore) List(ctx context.Context) ([]*queries.VillaView, error) {
	sql := `SELECT id, name, description, location, address, amenities, images,
	is_active, created_at, updated_at
FROM villas
ORDER BY created_at DESC`

	rows, err := v.db.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list villas", err)
	}
	defer rows.Close()

	var result []*queries.VillaView
	for rows.Next() {
		var view queries.VillaView
		if err := rows.Scan(
			&view.ID,
			&view.Name,
			&view.Description,
			&view.Location,
			&view.Address,
			&view.Amenities,
			&view.Images,
			&view.IsActive,
			&view.CreatedAt,
			&view.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan villa row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read villa rows", err)
	}
	return result, nil
}
