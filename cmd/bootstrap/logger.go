package bootstrap

import (
	"log/slog"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/handler/middleware"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as the slog default used by infra and usecases.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
