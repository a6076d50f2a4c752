package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/campaign"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/cart"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra/readstore"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra/repository"
	sqlc "github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra/sqlc/generated"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/errs"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxRetries  = 3
	baseBackoff = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) *PostgresUoW {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted is enough: the cart advance is a single conditional UPDATE.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx, 0)

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}
	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.q, u.pool)
}

// Each attempt rolls back explicitly instead of deferring, so retries do not pile up connections.
func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := u.attempt(ctx, options, fn, attempt)
		if err == nil {
			return nil
		}

		if !isRetryableError(err) {
			return err
		}
		if attempt == maxRetries {
			slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := calculateBackoff(attempt, baseBackoff)
		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return errMaxRetriesExceeded
}

func (u *PostgresUoW) attempt(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error, attempt int) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, &pgTx{dbtx: pgxTx, q: u.q})
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	rollback(ctx, pgxTx, attempt)
	return err
}

func rollback(ctx context.Context, tx pgx.Tx, attempt int) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "attempt", attempt+1, "error", err.Error())
	}
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	wait := time.Duration(1<<attempt) * base
	return wait + time.Duration(cryptoRandInt63n(int64(wait/5)))
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	// Lazy-initialized
	cartRepo     shared.CartRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Carts() shared.CartRepository {
	if t.cartRepo == nil {
		t.cartRepo = repository.NewCartRepository(t.q)
	}
	return t.cartRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.q, t.dbtx)
	}
	return t.commandReads
}

type commandReads struct {
	q    *sqlc.Queries
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	cartStore *readstore.CartReadStore
	owners    *readstore.OwnerDirectory
	orgStore  *readstore.OrganizationReadStore
}

func newCommandReads(q *sqlc.Queries, dbtx sqlc.DBTX) *commandReads {
	return &commandReads{q: q, dbtx: dbtx}
}

func (r *commandReads) carts() *readstore.CartReadStore {
	if r.cartStore == nil {
		r.cartStore = readstore.NewCartReadStore(r.q, r.dbtx)
	}
	return r.cartStore
}

func (r *commandReads) DueCarts(ctx context.Context, window campaign.DueWindow, limit int) ([]*cart.Cart, error) {
	return r.carts().SelectDue(ctx, window, limit)
}

func (r *commandReads) CartByID(ctx context.Context, id uuid.UUID) (*cart.Cart, error) {
	return r.carts().FindByID(ctx, id)
}

func (r *commandReads) OwnerByRef(ctx context.Context, ref cart.OwnerRef) (*campaign.Owner, error) {
	if r.owners == nil {
		r.owners = readstore.NewOwnerDirectory(
			readstore.NewEventOwnerSource(r.q, r.dbtx),
			readstore.NewAttractionOwnerSource(r.q, r.dbtx),
		)
	}
	return r.owners.OwnerByRef(ctx, ref)
}

func (r *commandReads) OrganizationByID(ctx context.Context, id uuid.UUID) (*shared.OrganizationSnapshot, error) {
	if r.orgStore == nil {
		r.orgStore = readstore.NewOrganizationReadStore(r.q, r.dbtx)
	}
	return r.orgStore.FindByID(ctx, id)
}
