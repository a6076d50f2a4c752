package repository

import (
	"context"
	"time"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/cart"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra"
	sqlc "github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra/sqlc/generated"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CartWriteQueries interface {
	AdvanceCartStep(ctx context.Context, db sqlc.DBTX, arg sqlc.AdvanceCartStepParams) (int64, error)
}

type CartRepository struct {
	queries CartWriteQueries
}

func NewCartRepository(queries CartWriteQueries) *CartRepository {
	return &CartRepository{queries: queries}
}

// ConditionalAdvance moves the cart one step forward only if emails_sent still
// equals expectedEmailsSent. false means another run got there first.
func (r *CartRepository) ConditionalAdvance(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, expectedEmailsSent int, now time.Time) (bool, error) {
	if expectedEmailsSent < 0 || expectedEmailsSent >= cart.MaxEmails {
		return false, nil
	}

	affected, err := r.queries.AdvanceCartStep(ctx, tx, sqlc.AdvanceCartStepParams{
		SentAt:             pgconv.TimeToPgtype(now),
		ID:                 id,
		ExpectedEmailsSent: int32(expectedEmailsSent), // #nosec G115 -- range checked above
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to advance abandoned cart", err)
	}

	return affected == 1, nil
}
