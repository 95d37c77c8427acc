package components

import (
	"villabook/internal/infra/db"
	"villabook/internal/infra/readstore"
	"villabook/internal/infra/repository"
	"villabook/internal/infra/uow"
	"villabook/internal/usecase/commands"
	"villabook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Room: public search plus the admin listing
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
			fx.As(new(queries.AdminRoomReadStore)),
		),
		// Villa
		fx.Annotate(
			readstore.NewVillaReadStore,
			fx.As(new(queries.VillaReadStore)),
		),
		// Booking: lookups, conflict counting, admin listing
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.AdminBookingReadStore)),
			fx.As(new(commands.BookingViewReader)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresTxRunner,
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
