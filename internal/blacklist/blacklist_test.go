package blacklist

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisBlacklist(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	bl := NewRedisBlacklist(client, "session:")
	ctx := context.Background()

	revoked, err := bl.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, bl.Revoke(ctx, "abc", time.Minute))
	assert.True(t, mr.Exists("session:abc"))

	revoked, err = bl.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Minute)
	revoked, err = bl.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisBlacklistUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	bl := NewRedisBlacklist(client, "session:")
	_, err := bl.IsRevoked(context.Background(), "abc")
	assert.Error(t, err)
}

func TestMemoryBlacklist(t *testing.T) {
	bl := NewMemoryBlacklist()
	ctx := context.Background()

	require.NoError(t, bl.Revoke(ctx, "abc", time.Minute))
	require.NoError(t, bl.Revoke(ctx, "expired", -time.Second))

	revoked, _ := bl.IsRevoked(ctx, "abc")
	assert.True(t, revoked)
	revoked, _ = bl.IsRevoked(ctx, "expired")
	assert.False(t, revoked)
}

func TestMemoryBlacklistSweepsExpiredOnRevoke(t *testing.T) {
	now := time.Now()
	bl := NewMemoryBlacklist()
	bl.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, bl.Revoke(ctx, "never-presented", time.Minute))
	require.NoError(t, bl.Revoke(ctx, "still-live", time.Hour))

	now = now.Add(2 * time.Minute)
	require.NoError(t, bl.Revoke(ctx, "fresh", time.Minute))

	assert.Len(t, bl.revoked, 2)
	assert.NotContains(t, bl.revoked, "never-presented")

	revoked, err := bl.IsRevoked(ctx, "still-live")
	require.NoError(t, err)
	assert.True(t, revoked)
}
