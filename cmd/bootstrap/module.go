package bootstrap

import (
	"yogaflow/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	DispatchModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
