package components

import (
	"toolrental-service/internal/handler"
	"toolrental-service/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		api.NewToolHandler,
	),
	fx.Invoke(handler.NewRouter),
)
