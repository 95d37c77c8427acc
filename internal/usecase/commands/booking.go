package commands

import (
	"context"
	"errors"
	"time"

	"villabook/internal/domain/booking"
	"villabook/internal/infra"
	"villabook/internal/infra/db"
	"villabook/internal/pkg/errs"
	"villabook/internal/usecase/queries"
	"villabook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomUnavailable         = errs.New("room is not available for selected dates")
	ErrRoomNotFound            = errs.New("room not found")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// TestCleanupEmail is the only customer email the cleanup command will
// delete bookings for. Everything else is refused outright.
const TestCleanupEmail = "test@example.com"

type CreateBookingParams struct {
	RoomID          uuid.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   *string
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	TotalPrice      float64
	SpecialRequests *string
}

type BookingRepository interface {
	// CountBlocking counts non-cancelled bookings on the room overlapping
	// [checkIn, checkOut).
	CountBlocking(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, checkIn, checkOut time.Time) (int64, error)
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	// DeleteByIDAndEmail deletes the booking only when its customer email
	// matches; returns the number of rows removed.
	DeleteByIDAndEmail(ctx context.Context, dbtx db.DBTX, id uuid.UUID, email string) (int64, error)
}

type BookingViewReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
}

type CleanupResult struct {
	Deleted bool
	Message string
}

type BookingCommands interface {
	// Create runs the availability check and the insert in one transaction.
	// A conflicting non-cancelled booking, found by the check or by losing
	// the exclusion-constraint race to a concurrent writer, yields
	// ErrRoomUnavailable. The stored status is always pending.
	Create(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error)
	// CleanupTestBooking removes a booking created by the smoke script. Only
	// rows whose customer email is TestCleanupEmail are eligible.
	CleanupTestBooking(ctx context.Context, id uuid.UUID) (*CleanupResult, error)
}

type bookingCommandsImpl struct {
	repo   BookingRepository
	reader BookingViewReader
	tx     shared.TxRunner
}

func NewBookingCommands(repo BookingRepository, reader BookingViewReader, tx shared.TxRunner) BookingCommands {
	return &bookingCommandsImpl{repo: repo, reader: reader, tx: tx}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error) {
	entity, err := toDomain(params)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	txErr := c.tx.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		stay := entity.Stay()
		conflicts, err := c.repo.CountBlocking(ctx, tx, entity.RoomID(), stay.CheckIn(), stay.CheckOut())
		if err != nil {
			return err
		}
		if conflicts > 0 {
			return ErrRoomUnavailable
		}

		createdID, err = c.repo.Create(ctx, tx, entity)
		return err
	})
	if txErr != nil {
		switch {
		case errors.Is(txErr, ErrRoomUnavailable):
			return nil, ErrRoomUnavailable
		case infra.IsKind(txErr, infra.KindConflict):
			// Lost the race to a concurrent writer; same outcome for the
			// caller as the explicit check.
			return nil, ErrRoomUnavailable
		case infra.IsKind(txErr, infra.KindForeignKeyViolated):
			return nil, ErrRoomNotFound
		default:
			return nil, errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
	}

	view, err := c.reader.FindByID(ctx, createdID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *bookingCommandsImpl) CleanupTestBooking(ctx context.Context, id uuid.UUID) (*CleanupResult, error) {
	var deleted int64
	err := c.tx.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		deleted, err = c.repo.DeleteByIDAndEmail(ctx, tx, id, TestCleanupEmail)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotProvisioned) {
			return &CleanupResult{Message: "Bookings table not created yet - nothing to clean up"}, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if deleted == 0 {
		return &CleanupResult{Message: "No matching test booking to clean up"}, nil
	}
	return &CleanupResult{Deleted: true, Message: "Test booking cleaned up successfully"}, nil
}

func toDomain(params CreateBookingParams) (*booking.Booking, error) {
	stay, err := booking.NewStayRange(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, err
	}

	requests := booking.NewSpecialRequests("")
	if params.SpecialRequests != nil {
		requests = booking.NewSpecialRequests(*params.SpecialRequests)
	}

	return booking.NewBooking(
		params.RoomID,
		booking.Customer{
			Name:  params.CustomerName,
			Email: params.CustomerEmail,
			Phone: params.CustomerPhone,
		},
		stay,
		params.Guests,
		params.TotalPrice,
		requests,
	)
}
