//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra"
	sqlc "github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCartWriteQueries struct {
	mock.Mock
}

func (m *MockCartWriteQueries) AdvanceCartStep(ctx context.Context, db sqlc.DBTX, arg sqlc.AdvanceCartStepParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestCartRepository_ConditionalAdvance(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cartID := uuid.New()

	tests := []struct {
		name       string
		expected   int
		affected   int64
		queryErr   error
		callsQuery bool
		want       bool
		wantKind   infra.RepositoryErrorKind
	}{
		{name: "advance from pending", expected: 0, affected: 1, callsQuery: true, want: true},
		{name: "advance to final step", expected: 2, affected: 1, callsQuery: true, want: true},
		{name: "another run advanced first", expected: 1, affected: 0, callsQuery: true, want: false},
		{name: "campaign already exhausted", expected: 3, callsQuery: false, want: false},
		{name: "negative expectation", expected: -1, callsQuery: false, want: false},
		{name: "database error", expected: 1, queryErr: assert.AnError, callsQuery: true, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockCartWriteQueries)
			if tt.callsQuery {
				q.On("AdvanceCartStep", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.AdvanceCartStepParams) bool {
					return arg.ID == cartID &&
						arg.ExpectedEmailsSent == int32(tt.expected) &&
						arg.SentAt.Valid && arg.SentAt.Time.Equal(now)
				})).Return(tt.affected, tt.queryErr)
			}

			repo := NewCartRepository(q)
			got, err := repo.ConditionalAdvance(context.Background(), nil, cartID, tt.expected, now)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			q.AssertExpectations(t)
		})
	}
}
