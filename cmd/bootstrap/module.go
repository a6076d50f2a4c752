package bootstrap

import (
	"github.com/mgthompo1/pulse-ticket-launch-sub008/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.NotifierModule,
	components.HandlerModule,
)
