//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/cart"
	sqlc "github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CartBuilder struct {
	ID              uuid.UUID
	OwnerKind       cart.OwnerKind
	OwnerID         uuid.UUID
	OrganizationID  uuid.UUID
	CustomerEmail   string
	CustomerName    *string
	LineItems       []cart.LineItem
	TotalCents      int64
	Status          cart.Status
	EmailsSent      int
	LastEmailSentAt *time.Time
	CreatedAt       time.Time
	ExpiresAt       time.Time
	UpdatedAt       time.Time
}

func NewCartBuilder() *CartBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	name := "Aroha Smith"
	return &CartBuilder{
		ID:             uuid.New(),
		OwnerKind:      cart.OwnerEvent,
		OwnerID:        uuid.New(),
		OrganizationID: uuid.New(),
		CustomerEmail:  "buyer@example.com",
		CustomerName:   &name,
		LineItems: []cart.LineItem{
			{Name: "General Admission", Quantity: 2, UnitPriceCents: 6000},
		},
		TotalCents: 12000,
		Status:     cart.StatusPending,
		CreatedAt:  now.Add(-2 * time.Hour),
		ExpiresAt:  now.Add(7 * 24 * time.Hour),
		UpdatedAt:  now.Add(-2 * time.Hour),
	}
}

func (b *CartBuilder) With(mutate func(*CartBuilder)) *CartBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CartBuilder) BuildDomain() (*cart.Cart, error) {
	return cart.Reconstruct(cart.ReconstructParams{
		ID:              b.ID,
		Owner:           cart.OwnerRef{Kind: b.OwnerKind, ID: b.OwnerID},
		OrganizationID:  b.OrganizationID,
		CustomerEmail:   b.CustomerEmail,
		CustomerName:    b.CustomerName,
		LineItems:       b.LineItems,
		TotalCents:      b.TotalCents,
		Status:          b.Status,
		EmailsSent:      b.EmailsSent,
		LastEmailSentAt: b.LastEmailSentAt,
		CreatedAt:       b.CreatedAt,
		ExpiresAt:       b.ExpiresAt,
		UpdatedAt:       b.UpdatedAt,
	})
}

// MustBuildDomain panics on invalid builder state; use it where the state is valid by construction.
func (b *CartBuilder) MustBuildDomain() *cart.Cart {
	c, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return c
}

func (b *CartBuilder) BuildInfra() sqlc.AbandonedCarts {
	items, err := json.Marshal(b.LineItems)
	if err != nil {
		panic(err)
	}

	row := sqlc.AbandonedCarts{
		ID:             b.ID,
		OwnerKind:      string(b.OwnerKind),
		OwnerID:        b.OwnerID,
		OrganizationID: b.OrganizationID,
		CustomerEmail:  b.CustomerEmail,
		LineItems:      items,
		TotalCents:     b.TotalCents,
		Status:         string(b.Status),
		EmailsSent:     int32(b.EmailsSent),
		CreatedAt:      pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		ExpiresAt:      pgtype.Timestamptz{Time: b.ExpiresAt, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
	if b.CustomerName != nil {
		row.CustomerName = pgtype.Text{String: *b.CustomerName, Valid: true}
	}
	if b.LastEmailSentAt != nil {
		row.LastEmailSentAt = pgtype.Timestamptz{Time: *b.LastEmailSentAt, Valid: true}
	}
	return row
}

// Fluent builder methods
func (b *CartBuilder) WithID(id uuid.UUID) *CartBuilder {
	b.ID = id
	return b
}

func (b *CartBuilder) WithOwner(kind cart.OwnerKind, id uuid.UUID) *CartBuilder {
	b.OwnerKind = kind
	b.OwnerID = id
	return b
}

func (b *CartBuilder) WithOrganizationID(id uuid.UUID) *CartBuilder {
	b.OrganizationID = id
	return b
}

func (b *CartBuilder) WithCustomerEmail(email string) *CartBuilder {
	b.CustomerEmail = email
	return b
}

func (b *CartBuilder) WithStatus(status cart.Status) *CartBuilder {
	b.Status = status
	return b
}

func (b *CartBuilder) WithCreatedAt(t time.Time) *CartBuilder {
	b.CreatedAt = t
	b.UpdatedAt = t
	return b
}

func (b *CartBuilder) WithExpiresAt(t time.Time) *CartBuilder {
	b.ExpiresAt = t
	return b
}

func (b *CartBuilder) WithTotalCents(cents int64) *CartBuilder {
	b.TotalCents = cents
	return b
}

// WithEmailsSent keeps status and last_email_sent_at consistent with n.
func (b *CartBuilder) WithEmailsSent(n int, lastSentAt time.Time) *CartBuilder {
	b.EmailsSent = n
	if n == 0 {
		b.LastEmailSentAt = nil
		b.Status = cart.StatusPending
		return b
	}
	t := lastSentAt
	b.LastEmailSentAt = &t
	b.Status = cart.StatusEmailSent
	return b
}
