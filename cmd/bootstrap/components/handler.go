package components

import (
	"bookit/internal/handler"
	"bookit/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewExperienceHandler,
		api.NewBookingHandler,
		api.NewPromoHandler,
	),
	fx.Invoke(handler.NewRouter),
)
