package readstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/campaign"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/cart"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra"
	sqlc "github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra/sqlc/generated"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/errs"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CartReadQueries interface {
	SelectDueCarts(ctx context.Context, db sqlc.DBTX, arg sqlc.SelectDueCartsParams) ([]sqlc.AbandonedCarts, error)
	GetCartByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.AbandonedCarts, error)
}

type CartReadStore struct {
	queries CartReadQueries
	db      sqlc.DBTX
}

func NewCartReadStore(queries CartReadQueries, db sqlc.DBTX) *CartReadStore {
	return &CartReadStore{
		queries: queries,
		db:      db,
	}
}

// SelectDue returns active, unexpired carts of campaign-enabled owners whose
// next step falls inside the window, oldest first.
func (r *CartReadStore) SelectDue(ctx context.Context, window campaign.DueWindow, limit int) ([]*cart.Cart, error) {
	rows, err := r.queries.SelectDueCarts(ctx, r.db, sqlc.SelectDueCartsParams{
		Now:                 pgconv.TimeToPgtype(window.Now),
		DefaultDelayMinutes: int32(window.DefaultDelayMinutes), // #nosec G115 -- minutes from config
		SecondTouchBefore:   pgconv.TimeToPgtype(window.SecondTouchBefore),
		ThirdTouchBefore:    pgconv.TimeToPgtype(window.ThirdTouchBefore),
		BatchLimit:          int32(limit), // #nosec G115 -- limit is bounded by config
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to select due carts", err)
	}

	carts := make([]*cart.Cart, 0, len(rows))
	for _, row := range rows {
		c, cerr := toCart(row)
		if cerr != nil {
			// one malformed row must not block the rest of the batch
			slog.Warn("skipping malformed abandoned cart", "cart_id", row.ID.String(), "error", cerr.Error())
			continue
		}
		carts = append(carts, c)
	}
	return carts, nil
}

func (r *CartReadStore) FindByID(ctx context.Context, id uuid.UUID) (*cart.Cart, error) {
	row, err := r.queries.GetCartByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("abandoned cart not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find abandoned cart", err)
	}

	c, err := toCart(row)
	if err != nil {
		return nil, infra.WrapRepoErr("abandoned cart row is invalid", err)
	}
	return c, nil
}

func toCart(row sqlc.AbandonedCarts) (*cart.Cart, error) {
	var items []cart.LineItem
	if len(row.LineItems) > 0 {
		if err := json.Unmarshal(row.LineItems, &items); err != nil {
			return nil, errs.Wrap(err, "decode line_items")
		}
	}

	return cart.Reconstruct(cart.ReconstructParams{
		ID: row.ID,
		Owner: cart.OwnerRef{
			Kind: cart.OwnerKind(row.OwnerKind),
			ID:   row.OwnerID,
		},
		OrganizationID:  row.OrganizationID,
		CustomerEmail:   row.CustomerEmail,
		CustomerName:    pgconv.StringPtrFromPgtype(row.CustomerName),
		LineItems:       items,
		TotalCents:      row.TotalCents,
		Status:          cart.Status(row.Status),
		EmailsSent:      int(row.EmailsSent),
		LastEmailSentAt: pgconv.TimePtrFromPgtype(row.LastEmailSentAt),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		ExpiresAt:       pgconv.TimeFromPgtype(row.ExpiresAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}
