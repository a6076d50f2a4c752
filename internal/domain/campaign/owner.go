package campaign

import (
	"time"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/cart"

	"github.com/google/uuid"
)

type OwnerKind = cart.OwnerKind

const (
	OwnerEvent      = cart.OwnerEvent
	OwnerAttraction = cart.OwnerAttraction
)

// OwnerConfig is the campaign configuration of an event or attraction,
// normalized to one shape so the rules below never look at the owner kind.
type OwnerConfig struct {
	Enabled bool
	// DelayMinutes is the first-touch delay; nil means the schedule default.
	DelayMinutes    *int
	Subject         string
	Content         string
	DiscountEnabled bool
	DiscountCode    string
	DiscountPercent *int
}

// Owner is what the dispatcher needs to know about a cart's owner.
type Owner struct {
	Ref            cart.OwnerRef
	Name           string
	OrganizationID uuid.UUID
	// EventDate is only known for events.
	EventDate *time.Time
	Config    OwnerConfig
}
