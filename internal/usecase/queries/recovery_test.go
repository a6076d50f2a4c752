//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/campaign"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/cart"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/clock"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/errs"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/usecase/queries"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/tests/common/builder"
	queriesmock "github.com/mgthompo1/pulse-ticket-launch-sub008/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type queriesFixture struct {
	carts  *queriesmock.MockCartReadStore
	owners *queriesmock.MockOwnerReadStore
	clock  *clock.MockClock
	q      queries.RecoveryQueries
}

func newQueriesFixture(t *testing.T) *queriesFixture {
	ctrl := gomock.NewController(t)
	f := &queriesFixture{
		carts:  queriesmock.NewMockCartReadStore(ctrl),
		owners: queriesmock.NewMockOwnerReadStore(ctrl),
		clock:  clock.NewMockClock(time.Now().UTC().Truncate(time.Microsecond)),
	}
	f.q = queries.NewRecoveryQueries(f.carts, f.owners, f.clock, campaign.DefaultSchedule)
	return f
}

func TestRecoveryQueries_NextStep(t *testing.T) {
	t.Run("due first touch", func(t *testing.T) {
		f := newQueriesFixture(t)
		ob := builder.NewOwnerBuilder()
		c := ob.ForCart(builder.NewCartBuilder()).MustBuildDomain()
		f.carts.EXPECT().FindByID(gomock.Any(), c.ID()).Return(c, nil)
		f.owners.EXPECT().OwnerByRef(gomock.Any(), c.Owner()).Return(ob.BuildDomain(), nil)

		view, err := f.q.NextStep(context.Background(), c.ID())

		require.NoError(t, err)
		assert.True(t, view.Eligible)
		assert.True(t, view.Due)
		require.NotNil(t, view.StepNumber)
		assert.Equal(t, 1, *view.StepNumber)
		require.NotNil(t, view.NextDueAt)
		assert.Equal(t, c.CreatedAt().Add(time.Hour), *view.NextDueAt)
		require.NotNil(t, view.Subject)
		assert.Equal(t, ob.Subject, *view.Subject)
		assert.False(t, view.IncludeDiscount)
	})

	t.Run("waiting for the second touch", func(t *testing.T) {
		f := newQueriesFixture(t)
		ob := builder.NewOwnerBuilder().WithDiscount("SAVE15", 15)
		lastSent := f.clock.Now().Add(-2 * time.Hour)
		c := ob.ForCart(builder.NewCartBuilder()).
			WithCreatedAt(f.clock.Now().Add(-5*time.Hour)).
			WithEmailsSent(1, lastSent).
			MustBuildDomain()
		f.carts.EXPECT().FindByID(gomock.Any(), c.ID()).Return(c, nil)
		f.owners.EXPECT().OwnerByRef(gomock.Any(), c.Owner()).Return(ob.BuildDomain(), nil)

		view, err := f.q.NextStep(context.Background(), c.ID())

		require.NoError(t, err)
		assert.True(t, view.Eligible)
		assert.False(t, view.Due)
		require.NotNil(t, view.NextDueAt)
		assert.Equal(t, lastSent.Add(24*time.Hour), *view.NextDueAt)
		assert.Equal(t, 2, *view.StepNumber)
		assert.True(t, view.IncludeDiscount)
		assert.Equal(t, "SAVE15", *view.DiscountCode)
		assert.Equal(t, 15, *view.DiscountPercent)
	})

	t.Run("exhausted cart has no next step", func(t *testing.T) {
		f := newQueriesFixture(t)
		ob := builder.NewOwnerBuilder()
		c := ob.ForCart(builder.NewCartBuilder()).
			WithCreatedAt(f.clock.Now().Add(-100*time.Hour)).
			WithEmailsSent(cart.MaxEmails, f.clock.Now().Add(-time.Hour)).
			MustBuildDomain()
		f.carts.EXPECT().FindByID(gomock.Any(), c.ID()).Return(c, nil)
		f.owners.EXPECT().OwnerByRef(gomock.Any(), c.Owner()).Return(ob.BuildDomain(), nil)

		view, err := f.q.NextStep(context.Background(), c.ID())

		require.NoError(t, err)
		assert.False(t, view.Eligible)
		assert.False(t, view.Due)
		assert.Nil(t, view.StepNumber)
		assert.Nil(t, view.NextDueAt)
		assert.Equal(t, cart.MaxEmails, view.EmailsSent)
	})

	t.Run("expired cart is not eligible", func(t *testing.T) {
		f := newQueriesFixture(t)
		ob := builder.NewOwnerBuilder()
		c := ob.ForCart(builder.NewCartBuilder()).
			WithExpiresAt(f.clock.Now()).
			MustBuildDomain()
		f.carts.EXPECT().FindByID(gomock.Any(), c.ID()).Return(c, nil)
		f.owners.EXPECT().OwnerByRef(gomock.Any(), c.Owner()).Return(ob.BuildDomain(), nil)

		view, err := f.q.NextStep(context.Background(), c.ID())

		require.NoError(t, err)
		assert.False(t, view.Eligible)
		assert.False(t, view.Due)
	})

	t.Run("unknown cart", func(t *testing.T) {
		f := newQueriesFixture(t)
		id := uuid.New()
		f.carts.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("cart not found", errs.New("no rows"), infra.KindNotFound))

		view, err := f.q.NextStep(context.Background(), id)

		assert.Nil(t, view)
		assert.ErrorIs(t, err, queries.ErrCartNotFound)
	})

	t.Run("unknown owner", func(t *testing.T) {
		f := newQueriesFixture(t)
		c := builder.NewCartBuilder().MustBuildDomain()
		f.carts.EXPECT().FindByID(gomock.Any(), c.ID()).Return(c, nil)
		f.owners.EXPECT().OwnerByRef(gomock.Any(), c.Owner()).
			Return(nil, infra.WrapRepoErr("owner not found", errs.New("no rows"), infra.KindNotFound))

		_, err := f.q.NextStep(context.Background(), c.ID())

		assert.ErrorIs(t, err, queries.ErrOwnerNotFound)
	})
}
