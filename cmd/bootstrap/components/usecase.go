package components

import (
	"bookit/internal/domain/promo"
	"bookit/internal/pkg/clock"
	"bookit/internal/pkg/config"
	"bookit/internal/usecase/commands"
	"bookit/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			promo.NewStaticEvaluator,
			fx.As(new(commands.PromoEvaluator)),
		),
		func(cfg config.Config) config.PricingConfig { return cfg.Pricing },
		func(cfg config.Config) config.BookingConfig { return cfg.Booking },
		commands.NewBookingUseCase,
		queries.NewCatalogQueries,
		queries.NewBookingQueries,
	),
)
