package lease

import (
	"context"
	"fmt"
	"time"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "abandoned-cart:send-lease"

// releaseScript deletes the key only while it still holds our token, so a
// lease that expired and was re-acquired by another run is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLease is a SET NX PX lock per (cart, step).
type RedisLease struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisLease(client redis.UniversalClient, ttl time.Duration) *RedisLease {
	return &RedisLease{client: client, ttl: ttl}
}

func (l *RedisLease) Acquire(ctx context.Context, cartID uuid.UUID, step int) (string, bool, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, Key(cartID, step), token, l.ttl).Result()
	if err != nil {
		return "", false, errs.Wrap(err, "acquire send lease")
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

func (l *RedisLease) Release(ctx context.Context, cartID uuid.UUID, step int, token string) error {
	if token == "" {
		return nil
	}
	if err := releaseScript.Run(ctx, l.client, []string{Key(cartID, step)}, token).Err(); err != nil {
		return errs.Wrap(err, "release send lease")
	}
	return nil
}

func Key(cartID uuid.UUID, step int) string {
	return fmt.Sprintf("%s:%s:%d", keyPrefix, cartID, step)
}

// NewRedisClient parses a redis:// URL.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errs.Wrap(err, "parse REDIS_URL")
	}
	return redis.NewClient(opts), nil
}
