package campaign

import (
	"time"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/cart"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/patch"
)

// Schedule holds the touch timing shared by every owner.
type Schedule struct {
	DefaultDelay     time.Duration
	SecondTouchAfter time.Duration
	ThirdTouchAfter  time.Duration
}

var DefaultSchedule = Schedule{
	DefaultDelay:     60 * time.Minute,
	SecondTouchAfter: 24 * time.Hour,
	ThirdTouchAfter:  48 * time.Hour,
}

// DueWindow is the timing part of IsDue at Now, in a form a store can filter on.
// Selection with it may still return carts IsDue rejects, never the reverse.
type DueWindow struct {
	Now                 time.Time
	DefaultDelayMinutes int
	SecondTouchBefore   time.Time
	ThirdTouchBefore    time.Time
}

func (s Schedule) Window(now time.Time) DueWindow {
	return DueWindow{
		Now:                 now,
		DefaultDelayMinutes: int(s.DefaultDelay / time.Minute),
		SecondTouchBefore:   now.Add(-s.SecondTouchAfter),
		ThirdTouchBefore:    now.Add(-s.ThirdTouchAfter),
	}
}

// IsDue evaluates c against DefaultSchedule.
func IsDue(c *cart.Cart, cfg OwnerConfig, now time.Time) bool {
	return DefaultSchedule.IsDue(c, cfg, now)
}

// NextDueAt evaluates c against DefaultSchedule.
func NextDueAt(c *cart.Cart, cfg OwnerConfig) (time.Time, bool) {
	return DefaultSchedule.NextDueAt(c, cfg)
}

// Eligible checks everything but timing: active status, steps left,
// not expired, campaign enabled.
func Eligible(c *cart.Cart, cfg OwnerConfig, now time.Time) bool {
	if c == nil || !cfg.Enabled {
		return false
	}
	if !c.Status().IsActive() || c.EmailsSent() >= cart.MaxEmails {
		return false
	}
	return !c.IsExpired(now)
}

func (s Schedule) IsDue(c *cart.Cart, cfg OwnerConfig, now time.Time) bool {
	if !Eligible(c, cfg, now) {
		return false
	}
	dueAt, ok := s.NextDueAt(c, cfg)
	if !ok {
		return false
	}
	return !now.Before(dueAt)
}

// NextDueAt returns the instant the cart's next step becomes due, ignoring
// status, expiry and the enabled flag. ok is false once no step is left.
func (s Schedule) NextDueAt(c *cart.Cart, cfg OwnerConfig) (time.Time, bool) {
	switch c.EmailsSent() {
	case 0:
		return c.CreatedAt().Add(s.firstTouchDelay(cfg)), true
	case 1:
		return s.afterLastSend(c, s.SecondTouchAfter)
	case 2:
		return s.afterLastSend(c, s.ThirdTouchAfter)
	default:
		return time.Time{}, false
	}
}

func (s Schedule) firstTouchDelay(cfg OwnerConfig) time.Duration {
	defaultMinutes := int(s.DefaultDelay / time.Minute)
	minutes := patch.Coalesce(cfg.DelayMinutes, defaultMinutes)
	if minutes < 0 {
		minutes = 0
	}
	return time.Duration(minutes) * time.Minute
}

func (s Schedule) afterLastSend(c *cart.Cart, wait time.Duration) (time.Time, bool) {
	last := c.LastEmailSentAt()
	if last == nil {
		return time.Time{}, false
	}
	return last.Add(wait), true
}
