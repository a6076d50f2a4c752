package commands

//go:generate mockgen -source=recovery.go -destination=../../../tests/mock/commands/recovery_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/campaign"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/cart"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/clock"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/config"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/errs"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var (
	ErrCartNotFound         = errs.New("abandoned cart not found")
	ErrCandidateQueryFailed = errs.New("failed to query recovery candidates")

	ErrOwnerNotFound        = errs.New("cart owner not found")
	ErrOrganizationNotFound = errs.New("organization not found")
	ErrAlreadyAdvanced      = errs.New("already advanced by another run")
	ErrAlreadyProcessing    = errs.New("already being processed")
)

type RunParams struct {
	// CartID selects exactly one cart and turns the run into a preview send.
	CartID   *uuid.UUID
	TestMode bool
	// Limit lowers the configured batch limit; zero keeps it.
	Limit int
}

type CartResult struct {
	CartID      uuid.UUID
	Email       string
	EmailNumber int
	Success     bool
	Skipped     bool
	Error       string
}

type RunResult struct {
	Success   bool
	Processed int
	Results   []CartResult
}

type RecoveryCommands interface {
	Run(ctx context.Context, params RunParams) (*RunResult, error)
}

type recoveryCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	lease    shared.SendLease
	clock    clock.Clock
	schedule campaign.Schedule
	cfg      config.RecoveryConfig
}

func NewRecoveryCommands(
	uow shared.UnitOfWork,
	notifier shared.Notifier,
	lease shared.SendLease,
	clk clock.Clock,
	schedule campaign.Schedule,
	cfg config.Config,
) RecoveryCommands {
	return &recoveryCommandsImpl{
		uow:      uow,
		notifier: notifier,
		lease:    lease,
		clock:    clk,
		schedule: schedule,
		cfg:      cfg.Recovery,
	}
}

func (uc *recoveryCommandsImpl) Run(ctx context.Context, params RunParams) (*RunResult, error) {
	now := uc.clock.Now()
	if params.CartID != nil {
		return uc.runSingle(ctx, *params.CartID, now)
	}

	candidates, err := uc.uow.CommandReads().DueCarts(ctx, uc.schedule.Window(now), uc.batchLimit(params.Limit))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "select due carts"), ErrCandidateQueryFailed)
	}

	result := &RunResult{Success: true, Results: make([]CartResult, 0, len(candidates))}
	mutate := !params.TestMode
	for _, c := range candidates {
		if ctx.Err() != nil {
			// the rest stays untouched for the next run
			slog.Warn("recovery run cancelled", "remaining", len(candidates)-result.Processed, "error", ctx.Err().Error())
			break
		}

		entry, attempted := uc.processCandidate(ctx, c, now, mutate)
		if !attempted {
			continue
		}
		result.Processed++
		result.Results = append(result.Results, entry)
	}

	slog.Info("recovery run finished",
		"candidates", len(candidates),
		"processed", result.Processed,
		"test_mode", params.TestMode)
	return result, nil
}

// runSingle sends the cart's next step regardless of timing and never mutates it.
func (uc *recoveryCommandsImpl) runSingle(ctx context.Context, cartID uuid.UUID, now time.Time) (*RunResult, error) {
	c, err := uc.uow.CommandReads().CartByID(ctx, cartID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCartNotFound)
		}
		return nil, errs.Wrap(err, "load cart")
	}

	step := min(c.NextStep(), cart.MaxEmails)
	entry := newEntry(c, step)

	owner, org, err := uc.loadContext(ctx, c)
	if err != nil {
		entry.Error = err.Error()
	} else {
		entry = uc.dispatch(ctx, c, owner, org, step, now, false)
	}

	return &RunResult{Success: true, Processed: 1, Results: []CartResult{entry}}, nil
}

// processCandidate reports attempted=false when the cart is not due yet.
func (uc *recoveryCommandsImpl) processCandidate(ctx context.Context, c *cart.Cart, now time.Time, mutate bool) (CartResult, bool) {
	step := c.NextStep()
	entry := newEntry(c, step)

	owner, err := uc.loadOwner(ctx, c)
	if err != nil {
		entry.Error = err.Error()
		slog.Warn("skipping cart without owner", "cart_id", c.ID().String(), "error", err.Error())
		return entry, true
	}

	if !uc.schedule.IsDue(c, owner.Config, now) {
		return CartResult{}, false
	}

	org, err := uc.loadOrganization(ctx, c)
	if err != nil {
		entry.Error = err.Error()
		slog.Warn("skipping cart without organization", "cart_id", c.ID().String(), "error", err.Error())
		return entry, true
	}

	return uc.dispatch(ctx, c, owner, org, step, now, mutate), true
}

func (uc *recoveryCommandsImpl) dispatch(
	ctx context.Context,
	c *cart.Cart,
	owner *campaign.Owner,
	org *shared.OrganizationSnapshot,
	step int,
	now time.Time,
	mutate bool,
) CartResult {
	entry := newEntry(c, step)
	policy := campaign.ResolveStep(step, owner.Config)

	token, acquired, err := uc.lease.Acquire(ctx, c.ID(), step)
	if err != nil {
		// the conditional update still guards the cart
		slog.Warn("send lease unavailable, continuing without it", "cart_id", c.ID().String(), "step", step, "error", err.Error())
		acquired = true
	}
	if !acquired {
		entry.Skipped = true
		entry.Error = ErrAlreadyProcessing.Error()
		slog.Info("cart step leased by another run", "cart_id", c.ID().String(), "step", step)
		return entry
	}

	msg, err := uc.buildMessage(c, owner, org, policy)
	if err != nil {
		uc.releaseLease(ctx, c.ID(), step, token)
		entry.Error = err.Error()
		return entry
	}

	if _, err := uc.notifier.Send(ctx, msg); err != nil {
		uc.releaseLease(ctx, c.ID(), step, token)
		entry.Error = err.Error()
		slog.Warn("recovery email failed", "cart_id", c.ID().String(), "step", step, "error", err.Error())
		return entry
	}

	// the email is out: recording it must not depend on the caller still waiting
	sentCtx := context.WithoutCancel(ctx)

	if !mutate {
		uc.releaseLease(sentCtx, c.ID(), step, token)
		entry.Success = true
		return entry
	}

	var advanced bool
	err = uc.uow.Within(sentCtx, func(ctx context.Context, tx shared.Tx) error {
		ok, derr := tx.Carts().ConditionalAdvance(ctx, tx.DB(), c.ID(), c.EmailsSent(), now)
		if derr != nil {
			return derr
		}
		advanced = ok
		return nil
	})
	if err != nil {
		// email is out; the lease stays so this step is not resent before it expires
		entry.Error = errs.Wrap(err, "record send").Error()
		slog.Error("recovery email sent but cart not advanced", "cart_id", c.ID().String(), "step", step, "error", err.Error())
		return entry
	}
	if !advanced {
		entry.Skipped = true
		entry.Error = ErrAlreadyAdvanced.Error()
		slog.Info("cart advanced by another run", "cart_id", c.ID().String(), "step", step)
		return entry
	}

	entry.Success = true
	slog.Info("recovery email sent", "cart_id", c.ID().String(), "step", step, "discount", policy.IncludeDiscount)
	return entry
}

func (uc *recoveryCommandsImpl) loadContext(ctx context.Context, c *cart.Cart) (*campaign.Owner, *shared.OrganizationSnapshot, error) {
	owner, err := uc.loadOwner(ctx, c)
	if err != nil {
		return nil, nil, err
	}
	org, err := uc.loadOrganization(ctx, c)
	if err != nil {
		return nil, nil, err
	}
	return owner, org, nil
}

func (uc *recoveryCommandsImpl) loadOwner(ctx context.Context, c *cart.Cart) (*campaign.Owner, error) {
	owner, err := uc.uow.CommandReads().OwnerByRef(ctx, c.Owner())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, errs.Wrap(err, "load owner")
	}
	return owner, nil
}

func (uc *recoveryCommandsImpl) loadOrganization(ctx context.Context, c *cart.Cart) (*shared.OrganizationSnapshot, error) {
	org, err := uc.uow.CommandReads().OrganizationByID(ctx, c.OrganizationID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, errs.Wrap(err, "load organization")
	}
	return org, nil
}

func (uc *recoveryCommandsImpl) releaseLease(ctx context.Context, cartID uuid.UUID, step int, token string) {
	if err := uc.lease.Release(ctx, cartID, step, token); err != nil {
		slog.Warn("failed to release send lease", "cart_id", cartID.String(), "step", step, "error", err.Error())
	}
}

func (uc *recoveryCommandsImpl) buildMessage(c *cart.Cart, owner *campaign.Owner, org *shared.OrganizationSnapshot, policy campaign.StepPolicy) (shared.Message, error) {
	msg := shared.Message{
		CartID:          c.ID(),
		To:              c.CustomerEmail(),
		CustomerName:    c.CustomerName(),
		Subject:         policy.Subject,
		Content:         policy.Content,
		Step:            policy.Step,
		LineItems:       c.LineItems(),
		TotalCents:      c.TotalCents(),
		IncludeDiscount: policy.IncludeDiscount,
		DiscountCode:    policy.DiscountCode,
		DiscountPercent: policy.DiscountPercent,
		Owner: shared.MessageOwner{
			Kind:      owner.Ref.Kind.String(),
			Name:      owner.Name,
			EventDate: owner.EventDate,
		},
		RecoveryURL: uc.recoveryURL(c.ID()),
	}
	if err := copier.Copy(&msg.Organization, org); err != nil {
		return shared.Message{}, errs.Wrap(err, "copy organization")
	}
	return msg, nil
}

func (uc *recoveryCommandsImpl) recoveryURL(cartID uuid.UUID) string {
	u, err := url.JoinPath(uc.cfg.CheckoutBaseURL, "recover", cartID.String())
	if err != nil {
		return ""
	}
	return u
}

func (uc *recoveryCommandsImpl) batchLimit(requested int) int {
	if requested > 0 && requested < uc.cfg.BatchLimit {
		return requested
	}
	return uc.cfg.BatchLimit
}

func newEntry(c *cart.Cart, step int) CartResult {
	return CartResult{
		CartID:      c.ID(),
		Email:       c.CustomerEmail(),
		EmailNumber: step,
	}
}
