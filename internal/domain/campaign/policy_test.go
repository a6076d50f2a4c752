//go:build unit

package campaign_test

import (
	"testing"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/campaign"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStep(t *testing.T) {
	percent := 15
	withDiscount := campaign.OwnerConfig{
		Enabled:         true,
		Subject:         "Your tickets are waiting",
		Content:         "Come back!",
		DiscountEnabled: true,
		DiscountCode:    "SAVE15",
		DiscountPercent: &percent,
	}

	tests := []struct {
		name         string
		step         int
		cfg          campaign.OwnerConfig
		wantSubject  string
		wantDiscount bool
	}{
		{name: "step 1 never discounts", step: 1, cfg: withDiscount, wantSubject: "Your tickets are waiting"},
		{name: "step 2 discount", step: 2, cfg: withDiscount, wantSubject: "15% off — complete your purchase", wantDiscount: true},
		{name: "step 3 discount", step: 3, cfg: withDiscount, wantSubject: "Last chance! 15% off", wantDiscount: true},
		{
			name:        "escalation disabled",
			step:        2,
			cfg:         func() campaign.OwnerConfig { c := withDiscount; c.DiscountEnabled = false; return c }(),
			wantSubject: "Your tickets are waiting",
		},
		{
			name:        "no code configured",
			step:        3,
			cfg:         func() campaign.OwnerConfig { c := withDiscount; c.DiscountCode = ""; return c }(),
			wantSubject: "Your tickets are waiting",
		},
		{
			name:        "empty subject falls back",
			step:        1,
			cfg:         campaign.OwnerConfig{Enabled: true},
			wantSubject: campaign.DefaultSubject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := campaign.ResolveStep(tt.step, tt.cfg)

			assert.Equal(t, tt.step, got.Step)
			assert.Equal(t, tt.wantSubject, got.Subject)
			assert.Equal(t, tt.cfg.Content, got.Content)
			assert.Equal(t, tt.wantDiscount, got.IncludeDiscount)
			if tt.wantDiscount {
				require.NotNil(t, got.DiscountCode)
				assert.Equal(t, tt.cfg.DiscountCode, *got.DiscountCode)
				require.NotNil(t, got.DiscountPercent)
				assert.Equal(t, percent, *got.DiscountPercent)
			} else {
				assert.Nil(t, got.DiscountCode)
				assert.Nil(t, got.DiscountPercent)
			}
		})
	}
}

func TestResolveStep_DiscountWithoutPercent(t *testing.T) {
	cfg := campaign.OwnerConfig{
		Enabled:         true,
		Subject:         "Still thinking it over?",
		DiscountEnabled: true,
		DiscountCode:    "WELCOMEBACK",
	}

	got := campaign.ResolveStep(2, cfg)

	assert.True(t, got.IncludeDiscount)
	require.NotNil(t, got.DiscountCode)
	assert.Equal(t, "WELCOMEBACK", *got.DiscountCode)
	assert.Nil(t, got.DiscountPercent)
	assert.Equal(t, "Still thinking it over?", got.Subject)
}

func TestResolveStep_DoesNotAliasConfig(t *testing.T) {
	percent := 20
	cfg := campaign.OwnerConfig{DiscountEnabled: true, DiscountCode: "A", DiscountPercent: &percent}

	got := campaign.ResolveStep(2, cfg)
	percent = 50

	assert.Equal(t, 20, *got.DiscountPercent)
}
