//go:build unit

package campaign_test

import (
	"testing"
	"time"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/campaign"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/cart"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func enabledConfig() campaign.OwnerConfig {
	delay := 60
	return campaign.OwnerConfig{Enabled: true, DelayMinutes: &delay}
}

func newCart(mutate func(*builder.CartBuilder)) *cart.Cart {
	return builder.NewCartBuilder().
		WithCreatedAt(t0).
		WithExpiresAt(t0.Add(30 * 24 * time.Hour)).
		With(mutate).
		MustBuildDomain()
}

func TestIsDue_FirstTouch(t *testing.T) {
	c := newCart(func(*builder.CartBuilder) {})
	cfg := enabledConfig()

	assert.False(t, campaign.IsDue(c, cfg, t0.Add(59*time.Minute)))
	assert.True(t, campaign.IsDue(c, cfg, t0.Add(60*time.Minute)))
	assert.True(t, campaign.IsDue(c, cfg, t0.Add(5*time.Hour)))
}

func TestIsDue_FirstTouchDelay(t *testing.T) {
	c := newCart(func(*builder.CartBuilder) {})

	t.Run("owner delay", func(t *testing.T) {
		delay := 15
		cfg := campaign.OwnerConfig{Enabled: true, DelayMinutes: &delay}
		assert.False(t, campaign.IsDue(c, cfg, t0.Add(14*time.Minute)))
		assert.True(t, campaign.IsDue(c, cfg, t0.Add(15*time.Minute)))
	})

	t.Run("unset delay uses the schedule default", func(t *testing.T) {
		cfg := campaign.OwnerConfig{Enabled: true}
		assert.False(t, campaign.IsDue(c, cfg, t0.Add(59*time.Minute)))
		assert.True(t, campaign.IsDue(c, cfg, t0.Add(60*time.Minute)))

		custom := campaign.Schedule{DefaultDelay: 2 * time.Hour, SecondTouchAfter: 24 * time.Hour, ThirdTouchAfter: 48 * time.Hour}
		assert.False(t, custom.IsDue(c, cfg, t0.Add(119*time.Minute)))
		assert.True(t, custom.IsDue(c, cfg, t0.Add(2*time.Hour)))
	})

	t.Run("negative delay is due immediately", func(t *testing.T) {
		delay := -5
		cfg := campaign.OwnerConfig{Enabled: true, DelayMinutes: &delay}
		assert.True(t, campaign.IsDue(c, cfg, t0))
	})
}

func TestIsDue_FollowUps(t *testing.T) {
	cfg := enabledConfig()
	t1 := t0.Add(2 * time.Hour)

	t.Run("second touch after 24h", func(t *testing.T) {
		c := newCart(func(b *builder.CartBuilder) { b.WithEmailsSent(1, t1) })
		assert.False(t, campaign.IsDue(c, cfg, t1.Add(23*time.Hour+59*time.Minute)))
		assert.True(t, campaign.IsDue(c, cfg, t1.Add(24*time.Hour)))
	})

	t.Run("third touch after 48h", func(t *testing.T) {
		c := newCart(func(b *builder.CartBuilder) { b.WithEmailsSent(2, t1) })
		assert.False(t, campaign.IsDue(c, cfg, t1.Add(47*time.Hour)))
		assert.True(t, campaign.IsDue(c, cfg, t1.Add(48*time.Hour)))
	})

	t.Run("no fourth touch", func(t *testing.T) {
		c := newCart(func(b *builder.CartBuilder) { b.WithEmailsSent(3, t1) })
		assert.False(t, campaign.IsDue(c, cfg, t1.Add(365*24*time.Hour)))

		_, ok := campaign.NextDueAt(c, cfg)
		assert.False(t, ok)
	})
}

func TestIsDue_Preconditions(t *testing.T) {
	cfg := enabledConfig()
	later := t0.Add(3 * time.Hour)

	tests := []struct {
		name   string
		mutate func(*builder.CartBuilder)
		cfg    campaign.OwnerConfig
		now    time.Time
	}{
		{name: "recovered", mutate: func(b *builder.CartBuilder) { b.WithStatus(cart.StatusRecovered) }, cfg: cfg, now: later},
		{name: "expired status", mutate: func(b *builder.CartBuilder) { b.WithStatus(cart.StatusExpired) }, cfg: cfg, now: later},
		{name: "cancelled", mutate: func(b *builder.CartBuilder) { b.WithStatus(cart.StatusCancelled) }, cfg: cfg, now: later},
		{name: "past expires_at", mutate: func(b *builder.CartBuilder) { b.WithExpiresAt(t0.Add(2 * time.Hour)) }, cfg: cfg, now: later},
		{name: "exactly at expires_at", mutate: func(b *builder.CartBuilder) { b.WithExpiresAt(later) }, cfg: cfg, now: later},
		{name: "campaign disabled", mutate: func(*builder.CartBuilder) {}, cfg: campaign.OwnerConfig{}, now: later},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCart(tt.mutate)
			assert.False(t, campaign.IsDue(c, tt.cfg, tt.now))
		})
	}

	assert.False(t, campaign.IsDue(nil, cfg, later))
}

func TestNextDueAt(t *testing.T) {
	cfg := enabledConfig()

	c := newCart(func(*builder.CartBuilder) {})
	at, ok := campaign.NextDueAt(c, cfg)
	require.True(t, ok)
	assert.Equal(t, t0.Add(time.Hour), at)

	t1 := t0.Add(90 * time.Minute)
	c = newCart(func(b *builder.CartBuilder) { b.WithEmailsSent(2, t1) })
	at, ok = campaign.NextDueAt(c, cfg)
	require.True(t, ok)
	assert.Equal(t, t1.Add(48*time.Hour), at)
}

func TestSchedule_Window(t *testing.T) {
	schedule := campaign.Schedule{
		DefaultDelay:     90 * time.Minute,
		SecondTouchAfter: 12 * time.Hour,
		ThirdTouchAfter:  36 * time.Hour,
	}
	now := t0.Add(72 * time.Hour)

	w := schedule.Window(now)

	assert.Equal(t, now, w.Now)
	assert.Equal(t, 90, w.DefaultDelayMinutes)
	assert.Equal(t, now.Add(-12*time.Hour), w.SecondTouchBefore)
	assert.Equal(t, now.Add(-36*time.Hour), w.ThirdTouchBefore)

	// a follow-up is inside the window exactly when IsDue says so
	cfg := enabledConfig()
	due := newCart(func(b *builder.CartBuilder) { b.WithEmailsSent(1, w.SecondTouchBefore) })
	early := newCart(func(b *builder.CartBuilder) { b.WithEmailsSent(1, w.SecondTouchBefore.Add(time.Second)) })
	assert.True(t, schedule.IsDue(due, cfg, now))
	assert.False(t, schedule.IsDue(early, cfg, now))
}

func TestExampleScenario(t *testing.T) {
	now := t0.Add(10 * 24 * time.Hour)
	percent := 10
	cfg := campaign.OwnerConfig{
		Enabled:         true,
		DiscountEnabled: true,
		DiscountCode:    "COMEBACK10",
		DiscountPercent: &percent,
	}
	c := newCart(func(b *builder.CartBuilder) {
		b.WithEmailsSent(1, now.Add(-30*time.Hour))
		b.WithTotalCents(12000)
	})

	require.True(t, campaign.IsDue(c, cfg, now))

	policy := campaign.ResolveStep(c.NextStep(), cfg)
	assert.Equal(t, 2, policy.Step)
	assert.True(t, policy.IncludeDiscount)
	require.NotNil(t, policy.DiscountCode)
	assert.Equal(t, "COMEBACK10", *policy.DiscountCode)
	require.NotNil(t, policy.DiscountPercent)
	assert.Equal(t, 10, *policy.DiscountPercent)

	require.NoError(t, c.Advance(now))
	assert.Equal(t, cart.StatusEmailSent, c.Status())
	assert.Equal(t, 2, c.EmailsSent())
	assert.Equal(t, now, *c.LastEmailSentAt())
	assert.Equal(t, int64(12000), c.TotalCents())
}
