package queries

import (
	"context"
	"log/slog"
)

// AdminBookingsLimit caps the operator dashboard's booking listing.
const AdminBookingsLimit = 50

type VillaReadStore interface {
	List(ctx context.Context) ([]*VillaView, error)
}

type AdminRoomReadStore interface {
	List(ctx context.Context) ([]*RoomView, error)
}

type AdminBookingReadStore interface {
	List(ctx context.Context, limit int32) ([]*BookingView, error)
}

// AdminQueries backs the operator dashboard. All three listings are
// most-recent-first and degrade silently: a store failure is logged and an
// empty listing returned so the dashboard renders instead of erroring.
type AdminQueries interface {
	Villas(ctx context.Context) ([]*VillaView, error)
	Rooms(ctx context.Context) ([]*RoomView, error)
	Bookings(ctx context.Context) ([]*BookingView, error)
}

type adminQueriesImpl struct {
	villas   VillaReadStore
	rooms    AdminRoomReadStore
	bookings AdminBookingReadStore
}

func NewAdminQueries(villas VillaReadStore, rooms AdminRoomReadStore, bookings AdminBookingReadStore) AdminQueries {
	return &adminQueriesImpl{villas: villas, rooms: rooms, bookings: bookings}
}

func (q *adminQueriesImpl) Villas(ctx context.Context) ([]*VillaView, error) {
	views, err := q.villas.List(ctx)
	if err != nil {
		slog.Error("admin villa listing failed, degrading to empty result", "error", err)
		return []*VillaView{}, nil
	}
	if views == nil {
		views = []*VillaView{}
	}
	return views, nil
}

func (q *adminQueriesImpl) Rooms(ctx context.Context) ([]*RoomView, error) {
	views, err := q.rooms.List(ctx)
	if err != nil {
		slog.Error("admin room listing failed, degrading to empty result", "error", err)
		return []*RoomView{}, nil
	}
	if views == nil {
		views = []*RoomView{}
	}
	return views, nil
}

func (q *adminQueriesImpl) Bookings(ctx context.Context) ([]*BookingView, error) {
	views, err := q.bookings.List(ctx, AdminBookingsLimit)
	if err != nil {
		slog.Error("admin booking listing failed, degrading to empty result", "error", err)
		return []*BookingView{}, nil
	}
	if views == nil {
		views = []*BookingView{}
	}
	return views, nil
}
