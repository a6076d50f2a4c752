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

type EventReadQueries interface {
	GetEventCampaign(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetEventCampaignRow, error)
}

type EventOwnerSource struct {
	queries EventReadQueries
	db      sqlc.DBTX
}

func NewEventOwnerSource(queries EventReadQueries, db sqlc.DBTX) *EventOwnerSource {
	return &EventOwnerSource{
		queries: queries,
		db:      db,
	}
}

func (s *EventOwnerSource) OwnerByID(ctx context.Context, id uuid.UUID) (*campaign.Owner, error) {
	row, err := s.queries.GetEventCampaign(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load event campaign", err)
	}

	return &campaign.Owner{
		Ref:            cart.OwnerRef{Kind: cart.OwnerEvent, ID: row.ID},
		Name:           row.Name,
		OrganizationID: row.OrganizationID,
		EventDate:      pgconv.TimePtrFromPgtype(row.EventDate),
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
