//go:build unit || e2e

package builder

import (
	"time"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/campaign"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/cart"
	sqlc "github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra/sqlc/generated"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OwnerBuilder struct {
	Kind            cart.OwnerKind
	ID              uuid.UUID
	OrganizationID  uuid.UUID
	Name            string
	EventDate       *time.Time
	Enabled         bool
	DelayMinutes    *int
	Subject         string
	Content         string
	DiscountEnabled bool
	DiscountCode    string
	DiscountPercent *int
}

func NewOwnerBuilder() *OwnerBuilder {
	eventDate := time.Now().UTC().Add(30 * 24 * time.Hour).Truncate(time.Microsecond)
	delay := 60
	return &OwnerBuilder{
		Kind:           cart.OwnerEvent,
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		Name:           "Harbour Lights Festival",
		EventDate:      &eventDate,
		Enabled:        true,
		DelayMinutes:   &delay,
		Subject:        "You left tickets behind",
		Content:        "Your tickets are still waiting.",
	}
}

func (b *OwnerBuilder) With(mutate func(*OwnerBuilder)) *OwnerBuilder {
	mutate(b)
	return b
}

func (b *OwnerBuilder) BuildDomain() *campaign.Owner {
	return &campaign.Owner{
		Ref:            cart.OwnerRef{Kind: b.Kind, ID: b.ID},
		Name:           b.Name,
		OrganizationID: b.OrganizationID,
		EventDate:      b.EventDate,
		Config:         b.BuildConfig(),
	}
}

func (b *OwnerBuilder) BuildConfig() campaign.OwnerConfig {
	return campaign.OwnerConfig{
		Enabled:         b.Enabled,
		DelayMinutes:    b.DelayMinutes,
		Subject:         b.Subject,
		Content:         b.Content,
		DiscountEnabled: b.DiscountEnabled,
		DiscountCode:    b.DiscountCode,
		DiscountPercent: b.DiscountPercent,
	}
}

func (b *OwnerBuilder) BuildEventRow() sqlc.GetEventCampaignRow {
	row := sqlc.GetEventCampaignRow{
		ID:                           b.ID,
		OrganizationID:               b.OrganizationID,
		Name:                         b.Name,
		AbandonedCartEnabled:         b.Enabled,
		AbandonedCartDelayMinutes:    int4(b.DelayMinutes),
		AbandonedCartEmailSubject:    text(b.Subject),
		AbandonedCartEmailContent:    text(b.Content),
		AbandonedCartDiscountEnabled: b.DiscountEnabled,
		AbandonedCartDiscountCode:    text(b.DiscountCode),
		AbandonedCartDiscountPercent: int4(b.DiscountPercent),
	}
	if b.EventDate != nil {
		row.EventDate = pgtype.Timestamptz{Time: *b.EventDate, Valid: true}
	}
	return row
}

func (b *OwnerBuilder) BuildAttractionRow() sqlc.GetAttractionCampaignRow {
	return sqlc.GetAttractionCampaignRow{
		ID:                           b.ID,
		OrganizationID:               b.OrganizationID,
		Name:                         b.Name,
		AbandonedCartEnabled:         b.Enabled,
		AbandonedCartDelayMinutes:    int4(b.DelayMinutes),
		AbandonedCartEmailSubject:    text(b.Subject),
		AbandonedCartEmailContent:    text(b.Content),
		AbandonedCartDiscountEnabled: b.DiscountEnabled,
		AbandonedCartDiscountCode:    text(b.DiscountCode),
		AbandonedCartDiscountPercent: int4(b.DiscountPercent),
	}
}

func (b *OwnerBuilder) BuildOrganization() *shared.OrganizationSnapshot {
	email := "hello@harbourlights.example"
	logo := "https://cdn.example.com/logo.png"
	return &shared.OrganizationSnapshot{
		ID:      b.OrganizationID,
		Name:    "Harbour Lights Ltd",
		Email:   &email,
		LogoURL: &logo,
	}
}

// Fluent builder methods
func (b *OwnerBuilder) AsAttraction() *OwnerBuilder {
	b.Kind = cart.OwnerAttraction
	b.Name = "Skyline Gondola"
	b.EventDate = nil
	return b
}

func (b *OwnerBuilder) WithDiscount(code string, percent int) *OwnerBuilder {
	b.DiscountEnabled = true
	b.DiscountCode = code
	b.DiscountPercent = &percent
	return b
}

func (b *OwnerBuilder) WithDelayMinutes(minutes *int) *OwnerBuilder {
	b.DelayMinutes = minutes
	return b
}

func (b *OwnerBuilder) Disabled() *OwnerBuilder {
	b.Enabled = false
	return b
}

// ForCart points a cart builder at this owner.
func (b *OwnerBuilder) ForCart(cb *CartBuilder) *CartBuilder {
	cb.OwnerKind = b.Kind
	cb.OwnerID = b.ID
	cb.OrganizationID = b.OrganizationID
	return cb
}

func text(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

func int4(v *int) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(*v), Valid: true}
}
