package components

import (
	"bookit/internal/infra/readstore"
	"bookit/internal/infra/writerepo"
	"bookit/internal/usecase/commands"
	"bookit/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write-side repositories
		fx.Annotate(
			writerepo.NewExperienceRepository,
			fx.As(new(commands.ExperienceRepository)),
		),
		fx.Annotate(
			writerepo.NewSlotRepository,
			fx.As(new(commands.SlotRepository)),
		),
		fx.Annotate(
			writerepo.NewBookingLedger,
			fx.As(new(commands.BookingLedger)),
		),
		// Read-side stores
		fx.Annotate(
			readstore.NewExperienceReadStore,
			fx.As(new(queries.ExperienceViewRepo)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotViewRepo)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
	),
)
