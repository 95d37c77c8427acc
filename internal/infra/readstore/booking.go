package readstore

import (
	"context"
	"time"

	"villabook/internal/domain/booking"
	"villabook/internal/infra"
	"villabook/internal/infra/db"
	"villabook/internal/pkg/pgconv"
	"villabook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingViewColumns = `
	b.id, b.room_id, r.name AS room_name, v.name AS villa_name,
	b.customer_name, b.customer_email, b.customer_phone,
	b.check_in, b.check_out, b.guests, b.total_price, b.status,
	b.special_requests, b.created_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
JOIN villas v ON v.id = r.villa_id`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	sql := `SELECT` + bookingViewColumns + `
WHERE b.id = $1`

	row := s.db.QueryRow(ctx, sql, id)
	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

// CountBlocking counts non-cancelled bookings on the room overlapping the
// half-open [checkIn, checkOut) range.
func (s *BookingReadStore) CountBlocking(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (int64, error) {
	sql := `SELECT COUNT(*)
FROM bookings
WHERE room_id = $1
  AND status <> '` + string(booking.StatusCancelled) + `'
  AND check_in < $2
  AND check_out > $3`

	var count int64
	if err := s.db.QueryRow(ctx, sql, roomID, checkOut, checkIn).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count blocking bookings", err)
	}
	return count, nil
}

func (s *BookingReadStore) List(ctx context.Context, limit int32) ([]*queries.BookingView, error) {
	sql := `SELECT` + bookingViewColumns + `
ORDER BY b.created_at DESC
LIMIT $1`

	rows, err := s.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		view            queries.BookingView
		customerPhone   pgtype.Text
		specialRequests pgtype.Text
	)
	if err := row.Scan(
		&view.ID,
		&view.RoomID,
		&view.RoomName,
		&view.VillaName,
		&view.CustomerName,
		&view.CustomerEmail,
		&customerPhone,
		&view.CheckIn,
		&view.CheckOut,
		&view.Guests,
		&view.TotalPrice,
		&view.Status,
		&specialRequests,
		&view.CreatedAt,
	); err != nil {
		return nil, err
	}

	view.CustomerPhone = pgconv.StringPtrFromPgtype(customerPhone)
	view.SpecialRequests = pgconv.StringPtrFromPgtype(specialRequests)
	return &view, nil
}
