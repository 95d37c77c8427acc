package queries

import (
	"context"
	"log/slog"

	"villabook/internal/infra"
	"villabook/internal/pkg/clock"
)

// FeaturedLimit caps the homepage default listing.
const FeaturedLimit = 6

type RoomReadStore interface {
	Search(ctx context.Context, filters RoomSearchFilters) ([]*RoomView, error)
	Featured(ctx context.Context, limit int32) ([]*RoomView, error)
}

type RoomQueries interface {
	// Search returns available rooms matching every supplied filter, rated
	// best-first. It never returns a store error to the caller: the public
	// listing degrades to an empty result, and an unprovisioned store is
	// answered with the fixed demo set.
	Search(ctx context.Context, filters RoomSearchFilters) ([]*RoomView, error)
	// Featured returns the homepage default listing, cheapest-first.
	Featured(ctx context.Context) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
	clock clock.Clock
}

func NewRoomQueries(store RoomReadStore, clock clock.Clock) RoomQueries {
	return &roomQueriesImpl{store: store, clock: clock}
}

func (q *roomQueriesImpl) Search(ctx context.Context, filters RoomSearchFilters) ([]*RoomView, error) {
	rooms, err := q.store.Search(ctx, filters)
	if err != nil {
		return q.degrade(err), nil
	}
	if rooms == nil {
		rooms = []*RoomView{}
	}
	return rooms, nil
}

func (q *roomQueriesImpl) Featured(ctx context.Context) ([]*RoomView, error) {
	rooms, err := q.store.Featured(ctx, FeaturedLimit)
	if err != nil {
		return q.degrade(err), nil
	}
	if rooms == nil {
		rooms = []*RoomView{}
	}
	return rooms, nil
}

func (q *roomQueriesImpl) degrade(err error) []*RoomView {
	if infra.IsKind(err, infra.KindNotProvisioned) {
		slog.Info("rooms table not provisioned, serving demo rooms")
		return DemoRooms(q.clock.Now())
	}
	slog.Error("room listing failed, degrading to empty result", "error", err)
	return []*RoomView{}
}
