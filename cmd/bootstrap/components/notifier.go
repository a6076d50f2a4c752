package components

import (
	"context"
	"log/slog"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra/lease"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra/notifier"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/config"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotifier,
		NewSendLease,
	),
)

func NewNotifier(cfg config.Config) shared.Notifier {
	return notifier.NewClient(cfg.Notifier)
}

// NewSendLease falls back to a no-op lease when REDIS_URL is unset.
func NewSendLease(lc fx.Lifecycle, cfg config.Config) (shared.SendLease, error) {
	if cfg.Redis.URL == "" {
		slog.Info("REDIS_URL not set, send lease disabled")
		return lease.NewNoop(), nil
	}

	client, err := lease.NewRedisClient(cfg.Redis.URL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				slog.Warn("Redis unreachable at startup, leases will be skipped until it recovers", "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return lease.NewRedisLease(client, cfg.Redis.LeaseTTL), nil
}
