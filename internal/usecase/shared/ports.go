package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports_mock.go -package=sharedmock

import (
	"context"

	"github.com/google/uuid"
)

type Notifier interface {
	Send(ctx context.Context, msg Message) (SendResult, error)
}

// SendLease narrows the window in which two runs send the same step of the same cart.
type SendLease interface {
	Acquire(ctx context.Context, cartID uuid.UUID, step int) (token string, acquired bool, err error)
	Release(ctx context.Context, cartID uuid.UUID, step int, token string) error
}
