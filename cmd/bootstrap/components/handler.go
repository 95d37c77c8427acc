package components

import (
	"villabook/internal/handler"
	"villabook/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
		api.NewAuthHandler,
		api.NewTestSupportHandler,
	),
	fx.Invoke(handler.NewRouter),
)
