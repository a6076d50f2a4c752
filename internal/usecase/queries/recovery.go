package queries

//go:generate mockgen -source=recovery.go -destination=../../../tests/mock/queries/recovery_mock.go -package=queriesmock

import (
	"context"
	"time"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/campaign"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/cart"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/clock"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCartNotFound  = errs.New("abandoned cart not found")
	ErrOwnerNotFound = errs.New("cart owner not found")
)

// NextStepView previews what the next recovery run would do with one cart.
type NextStepView struct {
	CartID     uuid.UUID   `json:"cart_id"`
	Status     cart.Status `json:"status"`
	EmailsSent int         `json:"emails_sent"`
	ExpiresAt  time.Time   `json:"expires_at"`
	// Eligible ignores timing; Due also requires the wait to have elapsed.
	Eligible        bool       `json:"eligible"`
	Due             bool       `json:"due"`
	NextDueAt       *time.Time `json:"next_due_at,omitempty"`
	StepNumber      *int       `json:"step_number,omitempty"`
	Subject         *string    `json:"subject,omitempty"`
	IncludeDiscount bool       `json:"include_discount"`
	DiscountCode    *string    `json:"discount_code,omitempty"`
	DiscountPercent *int       `json:"discount_percent,omitempty"`
}

type CartReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*cart.Cart, error)
}

type OwnerReadStore interface {
	OwnerByRef(ctx context.Context, ref cart.OwnerRef) (*campaign.Owner, error)
}

type RecoveryQueries interface {
	NextStep(ctx context.Context, cartID uuid.UUID) (*NextStepView, error)
}

type recoveryQueriesImpl struct {
	carts    CartReadStore
	owners   OwnerReadStore
	clock    clock.Clock
	schedule campaign.Schedule
}

func NewRecoveryQueries(carts CartReadStore, owners OwnerReadStore, clk clock.Clock, schedule campaign.Schedule) RecoveryQueries {
	return &recoveryQueriesImpl{
		carts:    carts,
		owners:   owners,
		clock:    clk,
		schedule: schedule,
	}
}

func (q *recoveryQueriesImpl) NextStep(ctx context.Context, cartID uuid.UUID) (*NextStepView, error) {
	c, err := q.carts.FindByID(ctx, cartID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	owner, err := q.owners.OwnerByRef(ctx, c.Owner())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	now := q.clock.Now()
	view := &NextStepView{
		CartID:     c.ID(),
		Status:     c.Status(),
		EmailsSent: c.EmailsSent(),
		ExpiresAt:  c.ExpiresAt(),
		Eligible:   campaign.Eligible(c, owner.Config, now),
		Due:        q.schedule.IsDue(c, owner.Config, now),
	}
	if !view.Eligible {
		return view, nil
	}

	if dueAt, ok := q.schedule.NextDueAt(c, owner.Config); ok {
		view.NextDueAt = &dueAt
	}

	step := c.NextStep()
	policy := campaign.ResolveStep(step, owner.Config)
	view.StepNumber = &step
	view.Subject = &policy.Subject
	view.IncludeDiscount = policy.IncludeDiscount
	view.DiscountCode = policy.DiscountCode
	view.DiscountPercent = policy.DiscountPercent
	return view, nil
}
