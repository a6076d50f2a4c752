package readstore

import (
	"context"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra"
	sqlc "github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra/sqlc/generated"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/pgconv"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrganizationReadQueries interface {
	GetOrganizationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetOrganizationByIDRow, error)
}

type OrganizationReadStore struct {
	queries OrganizationReadQueries
	db      sqlc.DBTX
}

func NewOrganizationReadStore(queries OrganizationReadQueries, db sqlc.DBTX) *OrganizationReadStore {
	return &OrganizationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrganizationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.OrganizationSnapshot, error) {
	row, err := r.queries.GetOrganizationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("organization not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find organization", err)
	}

	return &shared.OrganizationSnapshot{
		ID:      row.ID,
		Name:    row.Name,
		Email:   pgconv.StringPtrFromPgtype(row.Email),
		LogoURL: pgconv.StringPtrFromPgtype(row.LogoUrl),
	}, nil
}
