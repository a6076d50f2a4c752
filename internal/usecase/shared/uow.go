package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

import (
	"context"
	"time"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/campaign"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/cart"
	sqlc "github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Carts() CartRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads loads everything one recovery run needs.
type CommandReads interface {
	DueCarts(ctx context.Context, window campaign.DueWindow, limit int) ([]*cart.Cart, error)
	CartByID(ctx context.Context, id uuid.UUID) (*cart.Cart, error)
	OwnerByRef(ctx context.Context, ref cart.OwnerRef) (*campaign.Owner, error)
	OrganizationByID(ctx context.Context, id uuid.UUID) (*OrganizationSnapshot, error)
}

type CartRepository interface {
	// ConditionalAdvance reports false when the stored emails_sent no longer equals expectedEmailsSent.
	ConditionalAdvance(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, expectedEmailsSent int, now time.Time) (bool, error)
}
