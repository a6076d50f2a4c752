//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/cart"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func InsertOrganization(t *testing.T, db DBLike, ob *builder.OwnerBuilder) {
	t.Helper()

	org := ob.BuildOrganization()
	_, err := db.Exec(context.Background(),
		"INSERT INTO organizations (id, name, email, logo_url) VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING",
		org.ID, org.Name, org.Email, org.LogoURL)
	require.NoError(t, err)
}

// InsertOwner stores the organization and the event or attraction behind ob.
func InsertOwner(t *testing.T, db DBLike, ob *builder.OwnerBuilder) {
	t.Helper()
	InsertOrganization(t, db, ob)

	ctx := context.Background()
	var discountCode *string
	if ob.DiscountCode != "" {
		discountCode = &ob.DiscountCode
	}

	var err error
	switch ob.Kind {
	case cart.OwnerEvent:
		_, err = db.Exec(ctx, `
			INSERT INTO events (id, organization_id, name, event_date,
			    abandoned_cart_enabled, abandoned_cart_delay_minutes,
			    abandoned_cart_email_subject, abandoned_cart_email_content,
			    abandoned_cart_discount_enabled, abandoned_cart_discount_code, abandoned_cart_discount_percent)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			ob.ID, ob.OrganizationID, ob.Name, ob.EventDate,
			ob.Enabled, ob.DelayMinutes, ob.Subject, ob.Content,
			ob.DiscountEnabled, discountCode, ob.DiscountPercent)
	case cart.OwnerAttraction:
		_, err = db.Exec(ctx, `
			INSERT INTO attractions (id, organization_id, name,
			    abandoned_cart_enabled, abandoned_cart_delay_minutes,
			    abandoned_cart_email_subject, abandoned_cart_email_content,
			    abandoned_cart_discount_enabled, abandoned_cart_discount_code, abandoned_cart_discount_percent)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			ob.ID, ob.OrganizationID, ob.Name,
			ob.Enabled, ob.DelayMinutes, ob.Subject, ob.Content,
			ob.DiscountEnabled, discountCode, ob.DiscountPercent)
	default:
		t.Fatalf("unknown owner kind %q", ob.Kind)
	}
	require.NoError(t, err)
}

func InsertCart(t *testing.T, db DBLike, cb *builder.CartBuilder) uuid.UUID {
	t.Helper()

	row := cb.BuildInfra()
	_, err := db.Exec(context.Background(), `
		INSERT INTO abandoned_carts (id, owner_kind, owner_id, organization_id,
		    customer_email, customer_name, line_items, total_cents,
		    status, emails_sent, last_email_sent_at, created_at, expires_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		row.ID, row.OwnerKind, row.OwnerID, row.OrganizationID,
		row.CustomerEmail, row.CustomerName, row.LineItems, row.TotalCents,
		row.Status, row.EmailsSent, row.LastEmailSentAt, row.CreatedAt, row.ExpiresAt, row.UpdatedAt)
	require.NoError(t, err)
	return row.ID
}

type CartState struct {
	Status          string
	EmailsSent      int
	LastEmailSentAt *time.Time
}

func GetCartState(t *testing.T, db DBLike, id uuid.UUID) CartState {
	t.Helper()

	var state CartState
	err := db.QueryRow(context.Background(),
		"SELECT status, emails_sent, last_email_sent_at FROM abandoned_carts WHERE id = $1", id).
		Scan(&state.Status, &state.EmailsSent, &state.LastEmailSentAt)
	require.NoError(t, err)
	return state
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
