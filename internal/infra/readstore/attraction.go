package readstore

import (
	"context"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/campaign"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/cart"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra"
	sqlc "github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra/sqlc/generated"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AttractionReadQueries interface {
	GetAttractionCampaign(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetAttractionCampaignRow, error)
}

type AttractionOwnerSource struct {
	queries AttractionReadQueries
	db      sqlc.DBTX
}

func NewAttractionOwnerSource(queries AttractionReadQueries, db sqlc.DBTX) *AttractionOwnerSource {
	return &AttractionOwnerSource{
		queries: queries,
		db:      db,
	}
}

// Attractions have no date; EventDate stays nil.
func (s *AttractionOwnerSource) OwnerByID(ctx context.Context, id uuid.UUID) (*campaign.Owner, error) {
	row, err := s.queries.GetAttractionCampaign(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("attraction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load attraction campaign", err)
	}

	return &campaign.Owner{
		Ref:            cart.OwnerRef{Kind: cart.OwnerAttraction, ID: row.ID},
		Name:           row.Name,
		OrganizationID: row.OrganizationID,
		Config: campaign.OwnerConfig{
			Enabled:         row.AbandonedCartEnabled,
			DelayMinutes:    pgconv.IntPtrFromPgtype(row.AbandonedCartDelayMinutes),
			Subject:         pgconv.StringFromPgtype(row.AbandonedCartEmailSubject),
			Content:         pgconv.StringFromPgtype(row.AbandonedCartEmailContent),
			DiscountEnabled: row.AbandonedCartDiscountEnabled,
			DiscountCode:    pgconv.StringFromPgtype(row.AbandonedCartDiscountCode),
			DiscountPercent: pgconv.IntPtrFromPgtype(row.AbandonedCartDiscountPercent),
		},
	}, nil
}
