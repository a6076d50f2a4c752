package bootstrap

import (
	"time"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/config"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.JWT.Secret, duration)
}
