package readstore

import (
	"context"
	"fmt"
	"strings"

	"villabook/internal/domain/booking"
	"villabook/internal/infra"
	"villabook/internal/infra/db"
	"villabook/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const roomViewColumns = `
	r.id, r.villa_id, v.name AS villa_name, v.location AS villa_location,
	r.name, r.description, r.price_per_night, r.max_guests, r.room_type,
	r.size_sqm, r.amenities, r.images, r.is_available, r.rating,
	r.created_at, r.updated_at
FROM rooms r
JOIN villas v ON v.id = r.villa_id`

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

func (r *RoomReadStore) Search(ctx context.Context, filters queries.RoomSearchFilters) ([]*queries.RoomView, error) {
	sql, args := buildSearchQuery(filters)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search rooms", err)
	}
	defer rows.Close()

	return scanRoomViews(rows)
}

func (r *RoomReadStore) Featured(ctx context.Context, limit int32) ([]*queries.RoomView, error) {
	sql := `SELECT` + roomViewColumns + `
WHERE r.is_available = TRUE
ORDER BY r.price_per_night ASC
LIMIT $1`

	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load featured rooms", err)
	}
	defer rows.Close()

	return scanRoomViews(rows)
}

func (r *RoomReadStore) List(ctx context.Context) ([]*queries.RoomView, error) {
	sql := `SELECT` + roomViewColumns + `
ORDER BY r.created_at DESC`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	return scanRoomViews(rows)
}

// buildSearchQuery assembles the listing query from whichever filters are
// set. Every predicate is ANDed onto the is_available baseline; a filter
// that was not supplied contributes nothing. The date-range exclusion is an
// anti-join on blocking bookings using the half-open overlap test.
func buildSearchQuery(filters queries.RoomSearchFilters) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT` + roomViewColumns + `
WHERE r.is_available = TRUE`)

	args := make([]any, 0, 8)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filters.Guests != nil {
		sb.WriteString("\n  AND r.max_guests >= " + arg(*filters.Guests))
	}
	if filters.VillaName != nil {
		sb.WriteString("\n  AND v.name ILIKE '%' || " + arg(*filters.VillaName) + " || '%'")
	}
	if filters.MinPrice != nil {
		sb.WriteString("\n  AND r.price_per_night >= " + arg(*filters.MinPrice))
	}
	if filters.MaxPrice != nil {
		sb.WriteString("\n  AND r.price_per_night <= " + arg(*filters.MaxPrice))
	}
	if filters.RoomType != nil {
		sb.WriteString("\n  AND r.room_type = " + arg(*filters.RoomType))
	}
	if len(filters.Amenities) > 0 {
		sb.WriteString("\n  AND r.amenities && " + arg(filters.Amenities))
	}
	if filters.HasDateRange() {
		checkIn := arg(*filters.CheckIn)
		checkOut := arg(*filters.CheckOut)
		sb.WriteString("\n  AND NOT EXISTS (" +
			"SELECT 1 FROM bookings b WHERE b.room_id = r.id" +
			" AND b.status <> '" + string(booking.StatusCancelled) + "'" +
			" AND b.check_in < " + checkOut +
			" AND b.check_out > " + checkIn + ")")
	}

	sb.WriteString("\nORDER BY r.rating DESC")

	return sb.String(), args
}

func scanRoomViews(rows pgx.Rows) ([]*queries.RoomView, error) {
	var result []*queries.RoomView
	for rows.Next() {
		var view queries.RoomView
		if err := rows.Scan(
			&view.ID,
			&view.VillaID,
			&view.VillaName,
			&view.VillaLocation,
			&view.Name,
			&view.Description,
			&view.PricePerNight,
			&view.MaxGuests,
			&view.RoomType,
			&view.SizeSqm,
			&view.Amenities,
			&view.Images,
			&view.IsAvailable,
			&view.Rating,
			&view.CreatedAt,
			&view.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room rows", err)
	}
	return result, nil
}
