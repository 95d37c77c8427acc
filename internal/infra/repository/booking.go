package repository

import (
	"context"
	"time"

	"villabook/internal/domain/booking"
	"villabook/internal/infra"
	"villabook/internal/infra/db"
	"villabook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) CountBlocking(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, checkIn, checkOut time.Time) (int64, error) {
	sql := `SELECT COUNT(*)
FROM bookings
WHERE room_id = $1
  AND status <> '` + string(booking.StatusCancelled) + `'
  AND check_in < $2
  AND check_out > $3`

	var count int64
	if err := dbtx.QueryRow(ctx, sql, roomID, checkOut, checkIn).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count blocking bookings", err)
	}
	return count, nil
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	sql := `INSERT INTO bookings (
	id, room_id, customer_name, customer_email, customer_phone,
	check_in, check_out, guests, total_price, status, special_requests
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id`

	customer := b.Customer()
	stay := b.Stay()

	var specialRequests *string
	if !b.SpecialRequests().IsEmpty() {
		v := b.SpecialRequests().String()
		specialRequests = &v
	}

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, sql,
		b.ID(),
		b.RoomID(),
		customer.Name,
		customer.Email,
		pgconv.StringPtrToPgtype(customer.Phone),
		stay.CheckIn(),
		stay.CheckOut(),
		b.Guests(),
		b.TotalPrice(),
		b.Status().String(),
		pgconv.StringPtrToPgtype(specialRequests),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) DeleteByIDAndEmail(ctx context.Context, dbtx db.DBTX, id uuid.UUID, email string) (int64, error) {
	sql := `DELETE FROM bookings WHERE id = $1 AND customer_email = $2`

	tag, err := dbtx.Exec(ctx, sql, id, email)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete booking", err)
	}
	return tag.RowsAffected(), nil
}
