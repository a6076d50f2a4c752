package components

import (
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/campaign"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/clock"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/config"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/usecase"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/usecase/commands"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewSchedule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRecoveryCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRecoveryQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewSchedule(cfg config.Config) campaign.Schedule {
	return campaign.Schedule{
		DefaultDelay:     cfg.Recovery.DefaultDelay,
		SecondTouchAfter: cfg.Recovery.SecondTouchAfter,
		ThirdTouchAfter:  cfg.Recovery.ThirdTouchAfter,
	}
}
