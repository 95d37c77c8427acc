//go:build unit

package readstore

import (
	"strings"
	"testing"
	"time"

	"villabook/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestBuildSearchQuery(t *testing.T) {
	t.Run("no filters yields only the availability clause", func(t *testing.T) {
		sql, args := buildSearchQuery(queries.RoomSearchFilters{})

		assert.Contains(t, sql, "WHERE r.is_available = TRUE")
		assert.Contains(t, sql, "ORDER BY r.rating DESC")
		assert.NotContains(t, sql, "$1")
		assert.Empty(t, args)
	})

	t.Run("each filter contributes its clause and argument", func(t *testing.T) {
		checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		checkOut := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
		filters := queries.RoomSearchFilters{
			CheckIn:   &checkIn,
			CheckOut:  &checkOut,
			Guests:    ptr(2),
			VillaName: ptr("Demo"),
			MinPrice:  ptr(50.0),
			MaxPrice:  ptr(120.0),
			RoomType:  ptr("deluxe"),
			Amenities: []string{"WiFi", "TV"},
		}

		sql, args := buildSearchQuery(filters)

		assert.Contains(t, sql, "r.max_guests >= $1")
		assert.Contains(t, sql, "v.name ILIKE '%' || $2 || '%'")
		assert.Contains(t, sql, "r.price_per_night >= $3")
		assert.Contains(t, sql, "r.price_per_night <= $4")
		assert.Contains(t, sql, "r.room_type = $5")
		assert.Contains(t, sql, "r.amenities && $6")
		assert.Contains(t, sql, "NOT EXISTS")
		assert.Contains(t, sql, "b.status <> 'cancelled'")
		assert.Contains(t, sql, "b.check_in < $7")
		assert.Contains(t, sql, "b.check_out > $8")

		expected := []any{2, "Demo", 50.0, 120.0, "deluxe", []string{"WiFi", "TV"}, checkIn, checkOut}
		if diff := cmp.Diff(expected, args); diff != "" {
			t.Errorf("args mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("equal min and max price bound an exact price", func(t *testing.T) {
		filters := queries.RoomSearchFilters{
			MinPrice: ptr(85.0),
			MaxPrice: ptr(85.0),
		}

		sql, args := buildSearchQuery(filters)

		assert.Contains(t, sql, "r.price_per_night >= $1")
		assert.Contains(t, sql, "r.price_per_night <= $2")
		assert.Equal(t, []any{85.0, 85.0}, args)
	})

	t.Run("lone check-in is ignored", func(t *testing.T) {
		checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		sql, args := buildSearchQuery(queries.RoomSearchFilters{CheckIn: &checkIn})

		assert.NotContains(t, sql, "NOT EXISTS")
		assert.Empty(t, args)
	})

	t.Run("amenities filter passes the slice as one array argument", func(t *testing.T) {
		sql, args := buildSearchQuery(queries.RoomSearchFilters{Amenities: []string{"Pool"}})

		assert.Contains(t, sql, "r.amenities && $1")
		assert.Equal(t, []any{[]string{"Pool"}}, args)
	})

	t.Run("placeholders are sequential", func(t *testing.T) {
		filters := queries.RoomSearchFilters{
			Guests:   ptr(3),
			RoomType: ptr("suite"),
		}

		sql, args := buildSearchQuery(filters)

		assert.Equal(t, 2, len(args))
		assert.Equal(t, 1, strings.Count(sql, "$1"))
		assert.Equal(t, 1, strings.Count(sql, "$2"))
		assert.NotContains(t, sql, "$3")
	})
}
