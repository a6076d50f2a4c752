package cart

import "errors"

// MaxEmails is the number of touches in a recovery campaign.
const MaxEmails = 3

var (
	ErrInvalidStatus      = errors.New("invalid cart status")
	ErrInvalidOwnerKind   = errors.New("invalid owner kind")
	ErrEmailRequired      = errors.New("customer email is required")
	ErrEmailsSentRange    = errors.New("emails_sent must be between 0 and 3")
	ErrLastSentMismatch   = errors.New("last_email_sent_at must be set iff emails_sent > 0")
	ErrNotActive          = errors.New("cart is not in an active status")
	ErrCampaignExhausted  = errors.New("cart already received every campaign email")
	ErrSendTimeRegression = errors.New("send time precedes the previous send")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusEmailSent Status = "email_sent"
	StatusRecovered Status = "recovered"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusEmailSent, StatusRecovered, StatusExpired, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the recovery engine may still act on the cart.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusEmailSent
}

func (s Status) IsTerminal() bool {
	return s == StatusRecovered || s == StatusExpired || s == StatusCancelled
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// OwnerKind tags the entity whose campaign settings govern a cart.
type OwnerKind string

const (
	OwnerEvent      OwnerKind = "event"
	OwnerAttraction OwnerKind = "attraction"
)

func (k OwnerKind) String() string {
	return string(k)
}

func (k OwnerKind) IsValid() bool {
	return k == OwnerEvent || k == OwnerAttraction
}

func ParseOwnerKind(s string) (OwnerKind, error) {
	kind := OwnerKind(s)
	if !kind.IsValid() {
		return "", ErrInvalidOwnerKind
	}
	return kind, nil
}
