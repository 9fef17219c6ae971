package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*UnreadCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := Connect(mr.Addr(), "", 0)
	t.Cleanup(func() { C = nil })
	return c, mr
}

func TestUnreadSetAndGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	_, ok, err := c.GetUnread(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok, "empty cache misses")

	require.NoError(t, c.SetUnread(ctx, 1, 4))

	count, ok, err := c.GetUnread(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(4), count)
}

func TestIncrUnreadSkipsMissingKey(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	// Missing counter stays missing so the next read goes to the database.
	require.NoError(t, c.IncrUnread(ctx, 1))
	assert.False(t, mr.Exists(c.KeyForUnread(1)))

	require.NoError(t, c.SetUnread(ctx, 1, 2))
	require.NoError(t, c.IncrUnread(ctx, 1))

	count, ok, err := c.GetUnread(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(3), count)
}

func TestInvalidateUnread(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetUnread(ctx, 1, 4))
	require.NoError(t, c.InvalidateUnread(ctx, 1))

	_, ok, err := c.GetUnread(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnreadTTLRefreshOnGet(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetUnread(ctx, 1, 4))

	// Just short of expiry, a read keeps the counter alive.
	mr.FastForward(unreadTTL - 1)
	_, ok, err := c.GetUnread(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(unreadTTL - 1)
	_, ok, err = c.GetUnread(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok, "TTL was refreshed by the previous read")

	// Without reads the counter eventually expires.
	mr.FastForward(unreadTTL + 1)
	_, ok, err = c.GetUnread(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKeyForUnread(t *testing.T) {
	c := &UnreadCache{}
	assert.Equal(t, "unread:count:42", c.KeyForUnread(42))
}
