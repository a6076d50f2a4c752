//go:build unit

package readstore

import (
	"context"
	"testing"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/campaign"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/cart"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra"
	sqlc "github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra/sqlc/generated"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOwnerQueries struct {
	mock.Mock
}

func (m *MockOwnerQueries) GetEventCampaign(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetEventCampaignRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetEventCampaignRow), args.Error(1)
}

func (m *MockOwnerQueries) GetAttractionCampaign(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetAttractionCampaignRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetAttractionCampaignRow), args.Error(1)
}

func TestEventOwnerSource_OwnerByID(t *testing.T) {
	ob := builder.NewOwnerBuilder().WithDiscount("COMEBACK10", 10)
	q := new(MockOwnerQueries)
	q.On("GetEventCampaign", mock.Anything, mock.Anything, ob.ID).Return(ob.BuildEventRow(), nil)

	owner, err := NewEventOwnerSource(q, nil).OwnerByID(context.Background(), ob.ID)
	require.NoError(t, err)

	assert.Equal(t, cart.OwnerRef{Kind: cart.OwnerEvent, ID: ob.ID}, owner.Ref)
	assert.Equal(t, ob.Name, owner.Name)
	assert.Equal(t, ob.OrganizationID, owner.OrganizationID)
	require.NotNil(t, owner.EventDate)
	assert.True(t, ob.EventDate.Equal(*owner.EventDate))
	assert.Equal(t, ob.BuildConfig(), owner.Config)
}

func TestAttractionOwnerSource_OwnerByID(t *testing.T) {
	t.Run("unset optional columns", func(t *testing.T) {
		ob := builder.NewOwnerBuilder().AsAttraction().WithDelayMinutes(nil)
		ob.Subject = ""
		ob.Content = ""

		q := new(MockOwnerQueries)
		q.On("GetAttractionCampaign", mock.Anything, mock.Anything, ob.ID).Return(ob.BuildAttractionRow(), nil)

		owner, err := NewAttractionOwnerSource(q, nil).OwnerByID(context.Background(), ob.ID)
		require.NoError(t, err)

		assert.Equal(t, cart.OwnerAttraction, owner.Ref.Kind)
		assert.Nil(t, owner.EventDate)
		assert.Nil(t, owner.Config.DelayMinutes)
		assert.Empty(t, owner.Config.Subject)
		assert.Empty(t, owner.Config.DiscountCode)
		assert.Nil(t, owner.Config.DiscountPercent)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		q := new(MockOwnerQueries)
		q.On("GetAttractionCampaign", mock.Anything, mock.Anything, id).Return(sqlc.GetAttractionCampaignRow{}, pgx.ErrNoRows)

		owner, err := NewAttractionOwnerSource(q, nil).OwnerByID(context.Background(), id)
		require.Error(t, err)
		assert.Nil(t, owner)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

type stubSource struct {
	owner *campaign.Owner
	calls []uuid.UUID
}

func (s *stubSource) OwnerByID(_ context.Context, id uuid.UUID) (*campaign.Owner, error) {
	s.calls = append(s.calls, id)
	return s.owner, nil
}

func TestOwnerDirectory_OwnerByRef(t *testing.T) {
	events := &stubSource{owner: builder.NewOwnerBuilder().BuildDomain()}
	attractions := &stubSource{owner: builder.NewOwnerBuilder().AsAttraction().BuildDomain()}
	dir := NewOwnerDirectoryFromSources(map[cart.OwnerKind]OwnerConfigSource{
		cart.OwnerEvent:      events,
		cart.OwnerAttraction: attractions,
	})

	attractionID := uuid.New()
	owner, err := dir.OwnerByRef(context.Background(), cart.OwnerRef{Kind: cart.OwnerAttraction, ID: attractionID})
	require.NoError(t, err)
	assert.Same(t, attractions.owner, owner)
	assert.Equal(t, []uuid.UUID{attractionID}, attractions.calls)
	assert.Empty(t, events.calls)

	_, err = dir.OwnerByRef(context.Background(), cart.OwnerRef{Kind: "venue", ID: uuid.New()})
	require.ErrorIs(t, err, ErrUnknownOwnerKind)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
