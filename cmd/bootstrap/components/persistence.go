package components

import (
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra/readstore"
	sqlc "github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra/sqlc/generated"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra/uow"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/usecase/queries"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Cart
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CartReadQueries)),
		),
		fx.Annotate(
			readstore.NewCartReadStore,
			fx.As(new(queries.CartReadStore)),
		),
		// Owners
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.EventReadQueries)),
		),
		readstore.NewEventOwnerSource,
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AttractionReadQueries)),
		),
		readstore.NewAttractionOwnerSource,
		fx.Annotate(
			readstore.NewOwnerDirectory,
			fx.As(new(queries.OwnerReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
