package bootstrap

import (
	"racing-ticket-desk/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.JobModule,
)
