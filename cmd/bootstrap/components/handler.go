package components

import (
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/handler"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/handler/api"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRecoveryHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
