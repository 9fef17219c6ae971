package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// unreadTTL bounds staleness if a counter update is lost.
const unreadTTL = time.Hour

// UnreadCache keeps per-user unread-message counters in Redis so the
// badge count on every screen load doesn't hit the database.
type UnreadCache struct {
	Client *redis.Client
}

// C is the process-wide cache handle. It stays nil when Redis is not
// configured; callers fall back to the database in that case.
var C *UnreadCache

// Connect initializes the global cache client.
func Connect(addr, password string, db int) *UnreadCache {
	opts := &redis.Options{Addr: addr}
	if password != "" {
		opts.Password = password
	}
	if db != 0 {
		opts.DB = db
	}
	C = &UnreadCache{Client: redis.NewClient(opts)}
	return C
}

func (c *UnreadCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

// KeyForUnread generates the Redis key for a user's unread counter.
func (c *UnreadCache) KeyForUnread(userID uint) string {
	return fmt.Sprintf("unread:count:%d", userID)
}

// GetUnread returns the cached unread count for a user. The second
// return value is false on a cache miss.
func (c *UnreadCache) GetUnread(ctx context.Context, userID uint) (int64, bool, error) {
	key := c.KeyForUnread(userID)
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	// refresh TTL on access
	_ = c.Client.Expire(ctx, key, unreadTTL).Err()
	return n, true, nil
}

// SetUnread stores the unread count with a TTL refresh.
func (c *UnreadCache) SetUnread(ctx context.Context, userID uint, count int64) error {
	return c.Client.Set(ctx, c.KeyForUnread(userID), count, unreadTTL).Err()
}

// IncrUnread bumps the counter after a message is delivered. A missing
// key is left missing so the next read repopulates from the database.
func (c *UnreadCache) IncrUnread(ctx context.Context, userID uint) error {
	key := c.KeyForUnread(userID)
	exists, err := c.Client.Exists(ctx, key).Result()
	if err != nil || exists == 0 {
		return err
	}
	if err := c.Client.Incr(ctx, key).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, unreadTTL).Err()
}

// InvalidateUnread drops the counter, e.g. after messages are marked read.
func (c *UnreadCache) InvalidateUnread(ctx context.Context, userID uint) error {
	return c.Client.Del(ctx, c.KeyForUnread(userID)).Err()
}
