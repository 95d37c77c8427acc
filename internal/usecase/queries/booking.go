package queries

import (
	"context"
	"time"

	"villabook/internal/infra"
	"villabook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound       = errs.New("booking not found")
	ErrAvailabilityCheck     = errs.New("failed to check availability")
	ErrStoreNotProvisioned   = errs.New("bookings table not provisioned")
	ErrBookingLookupInternal = errs.New("failed to load booking")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// CountBlocking counts non-cancelled bookings for the room whose
	// [check_in, check_out) interval overlaps the requested range.
	CountBlocking(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (int64, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// CheckAvailability is the read-only availability probe. It does not
	// validate check_in < check_out; that is the caller's responsibility.
	CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (*AvailabilityResult, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrBookingNotFound
		case infra.IsKind(err, infra.KindNotProvisioned):
			return nil, ErrStoreNotProvisioned
		default:
			return nil, errs.Mark(err, ErrBookingLookupInternal)
		}
	}
	return view, nil
}

func (q *bookingQueriesImpl) CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (*AvailabilityResult, error) {
	conflicts, err := q.store.CountBlocking(ctx, roomID, checkIn, checkOut)
	if err != nil {
		// No bookings table yet means nothing can conflict.
		if infra.IsKind(err, infra.KindNotProvisioned) {
			return &AvailabilityResult{
				Available: true,
				Message:   "Room is available (bookings table not created yet)",
			}, nil
		}
		return nil, errs.Mark(err, ErrAvailabilityCheck)
	}

	if conflicts > 0 {
		return &AvailabilityResult{
			Available:           false,
			ConflictingBookings: conflicts,
			Message:             "Room is not available for selected dates",
		}, nil
	}

	return &AvailabilityResult{
		Available: true,
		Message:   "Room is available",
	}, nil
}
