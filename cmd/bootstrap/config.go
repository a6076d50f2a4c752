package bootstrap

import (
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
