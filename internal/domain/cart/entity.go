package cart

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type LineItem struct {
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

type OwnerRef struct {
	Kind OwnerKind
	ID   uuid.UUID
}

// Cart is one abandoned checkout. Contents and owner are fixed at creation;
// only the campaign progress (status, emailsSent, lastEmailSentAt) moves.
type Cart struct {
	id              uuid.UUID
	owner           OwnerRef
	organizationID  uuid.UUID
	customerEmail   string
	customerName    *string
	lineItems       []LineItem
	totalCents      int64
	status          Status
	emailsSent      int
	lastEmailSentAt *time.Time
	createdAt       time.Time
	expiresAt       time.Time
	updatedAt       time.Time
}

type ReconstructParams struct {
	ID              uuid.UUID
	Owner           OwnerRef
	OrganizationID  uuid.UUID
	CustomerEmail   string
	CustomerName    *string
	LineItems       []LineItem
	TotalCents      int64
	Status          Status
	EmailsSent      int
	LastEmailSentAt *time.Time
	CreatedAt       time.Time
	ExpiresAt       time.Time
	UpdatedAt       time.Time
}

// Reconstruct rebuilds a persisted cart, rejecting rows that break the progress invariants.
func Reconstruct(p ReconstructParams) (*Cart, error) {
	if !p.Owner.Kind.IsValid() {
		return nil, ErrInvalidOwnerKind
	}
	if !p.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if strings.TrimSpace(p.CustomerEmail) == "" {
		return nil, ErrEmailRequired
	}
	if p.EmailsSent < 0 || p.EmailsSent > MaxEmails {
		return nil, ErrEmailsSentRange
	}
	if (p.EmailsSent > 0) != (p.LastEmailSentAt != nil) {
		return nil, ErrLastSentMismatch
	}

	items := make([]LineItem, len(p.LineItems))
	copy(items, p.LineItems)

	return &Cart{
		id:              p.ID,
		owner:           p.Owner,
		organizationID:  p.OrganizationID,
		customerEmail:   p.CustomerEmail,
		customerName:    p.CustomerName,
		lineItems:       items,
		totalCents:      p.TotalCents,
		status:          p.Status,
		emailsSent:      p.EmailsSent,
		lastEmailSentAt: p.LastEmailSentAt,
		createdAt:       p.CreatedAt,
		expiresAt:       p.ExpiresAt,
		updatedAt:       p.UpdatedAt,
	}, nil
}

func (c *Cart) ID() uuid.UUID               { return c.id }
func (c *Cart) Owner() OwnerRef             { return c.owner }
func (c *Cart) OrganizationID() uuid.UUID   { return c.organizationID }
func (c *Cart) CustomerEmail() string       { return c.customerEmail }
func (c *Cart) CustomerName() *string       { return c.customerName }
func (c *Cart) LineItems() []LineItem       { return c.lineItems }
func (c *Cart) TotalCents() int64           { return c.totalCents }
func (c *Cart) Status() Status              { return c.status }
func (c *Cart) EmailsSent() int             { return c.emailsSent }
func (c *Cart) LastEmailSentAt() *time.Time { return c.lastEmailSentAt }
func (c *Cart) CreatedAt() time.Time        { return c.createdAt }
func (c *Cart) ExpiresAt() time.Time        { return c.expiresAt }
func (c *Cart) UpdatedAt() time.Time        { return c.updatedAt }

// NextStep is the campaign step a send would deliver now, in 1..MaxEmails+1.
func (c *Cart) NextStep() int {
	return c.emailsSent + 1
}

func (c *Cart) IsExpired(now time.Time) bool {
	return !now.Before(c.expiresAt)
}

// Advance records one successful send. The store performs the same transition
// conditionally on the previously read emailsSent.
func (c *Cart) Advance(now time.Time) error {
	if !c.status.IsActive() {
		return ErrNotActive
	}
	if c.emailsSent >= MaxEmails {
		return ErrCampaignExhausted
	}
	if c.lastEmailSentAt != nil && now.Before(*c.lastEmailSentAt) {
		return ErrSendTimeRegression
	}

	sentAt := now
	c.status = StatusEmailSent
	c.emailsSent++
	c.lastEmailSentAt = &sentAt
	c.updatedAt = now
	return nil
}
