package components

import (
	"toolrental-service/internal/pkg/clock"
	"toolrental-service/internal/usecase"
	"toolrental-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewCheckoutUseCase,
		queries.NewToolQueries,
	),
)
