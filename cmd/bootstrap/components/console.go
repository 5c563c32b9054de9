package components

import (
	"os"

	"toolrental-service/internal/cli"
	"toolrental-service/internal/usecase"
	"toolrental-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var ConsoleModule = fx.Module("console",
	fx.Provide(
		func(checkoutUseCase usecase.CheckoutUseCase, toolQueries queries.ToolQueries) *cli.Console {
			return cli.NewConsole(checkoutUseCase, toolQueries, os.Stdin, os.Stdout)
		},
	),
)
