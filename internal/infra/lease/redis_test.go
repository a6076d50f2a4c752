//go:build e2e

package lease_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/infra/lease"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RedisLeaseSuite struct {
	suite.Suite
	container testcontainers.Container
	url       string
}

func TestRedisLeaseSuite(t *testing.T) {
	suite.Run(t, new(RedisLeaseSuite))
}

func (s *RedisLeaseSuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort(nat.Port("6379/tcp")).WithStartupTimeout(60 * time.Second),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		},
		Started: true,
	})
	require.NoError(s.T(), err)
	s.container = c

	host, err := c.Host(ctx)
	require.NoError(s.T(), err)
	port, err := c.MappedPort(ctx, "6379/tcp")
	require.NoError(s.T(), err)
	s.url = fmt.Sprintf("redis://%s:%s/0", host, port.Port())
}

func (s *RedisLeaseSuite) TearDownSuite() {
	if s.container != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.container.Terminate(ctx)
	}
}

func (s *RedisLeaseSuite) newLease(ttl time.Duration) *lease.RedisLease {
	client, err := lease.NewRedisClient(s.url)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = client.Close() })
	return lease.NewRedisLease(client, ttl)
}

func (s *RedisLeaseSuite) TestAcquireIsExclusivePerStep() {
	ctx := context.Background()
	l := s.newLease(time.Minute)
	id := uuid.New()

	token, ok, err := l.Acquire(ctx, id, 1)
	s.Require().NoError(err)
	s.True(ok)
	s.NotEmpty(token)

	_, ok, err = l.Acquire(ctx, id, 1)
	s.Require().NoError(err)
	s.False(ok, "second run must not get the same step")

	_, ok, err = l.Acquire(ctx, id, 2)
	s.Require().NoError(err)
	s.True(ok, "a different step is a different lease")
}

func (s *RedisLeaseSuite) TestReleaseRequiresOwnership() {
	ctx := context.Background()
	l := s.newLease(time.Minute)
	id := uuid.New()

	token, ok, err := l.Acquire(ctx, id, 1)
	s.Require().NoError(err)
	s.Require().True(ok)

	s.Require().NoError(l.Release(ctx, id, 1, "someone-else"))
	_, ok, err = l.Acquire(ctx, id, 1)
	s.Require().NoError(err)
	s.False(ok, "foreign token must not release")

	s.Require().NoError(l.Release(ctx, id, 1, token))
	_, ok, err = l.Acquire(ctx, id, 1)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *RedisLeaseSuite) TestLeaseExpires() {
	ctx := context.Background()
	l := s.newLease(200 * time.Millisecond)
	id := uuid.New()

	_, ok, err := l.Acquire(ctx, id, 3)
	s.Require().NoError(err)
	s.Require().True(ok)

	s.Eventually(func() bool {
		_, ok, err := l.Acquire(ctx, id, 3)
		return err == nil && ok
	}, 3*time.Second, 100*time.Millisecond)
}
