package components

import (
	"racing-ticket-desk/internal/handler"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
