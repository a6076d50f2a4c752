package shared

import (
	"time"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/cart"

	"github.com/google/uuid"
)

// OrganizationSnapshot is opaque rendering data; the engine never branches on it.
type OrganizationSnapshot struct {
	ID      uuid.UUID
	Name    string
	Email   *string
	LogoURL *string
}

type MessageOrganization struct {
	Name    string
	Email   *string
	LogoURL *string
}

type MessageOwner struct {
	Kind      string
	Name      string
	EventDate *time.Time
}

// Message is one recovery email handed to the notifier for rendering and delivery.
type Message struct {
	CartID          uuid.UUID
	To              string
	CustomerName    *string
	Subject         string
	Content         string
	Step            int
	LineItems       []cart.LineItem
	TotalCents      int64
	IncludeDiscount bool
	DiscountCode    *string
	DiscountPercent *int
	Owner           MessageOwner
	Organization    MessageOrganization
	RecoveryURL     string
}

type SendResult struct {
	MessageID string
}
