package auth

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBlacklist(t *testing.T) {
	ctx := context.Background()

	t.Run("revoked token stays revoked", func(t *testing.T) {
		b := NewMemoryBlacklist()

		require.NoError(t, b.Add(ctx, "token-a", TokenTTL))

		tem, err := b.Has(ctx, "token-a")
		require.NoError(t, err)
		assert.True(t, tem)

		tem, err = b.Has(ctx, "token-b")
		require.NoError(t, err)
		assert.False(t, tem)
	})

	t.Run("add is idempotent", func(t *testing.T) {
		b := NewMemoryBlacklist()

		require.NoError(t, b.Add(ctx, "token-a", TokenTTL))
		require.NoError(t, b.Add(ctx, "token-a", TokenTTL))

		assert.Equal(t, 1, b.Size())
	})

	t.Run("entry evicts after the token's own expiry", func(t *testing.T) {
		b := NewMemoryBlacklist()

		require.NoError(t, b.Add(ctx, "token-a", time.Millisecond))
		time.Sleep(5 * time.Millisecond)

		tem, err := b.Has(ctx, "token-a")
		require.NoError(t, err)
		assert.False(t, tem)
		assert.Equal(t, 0, b.Size())
	})

	t.Run("concurrent adds and lookups do not corrupt the set", func(t *testing.T) {
		b := NewMemoryBlacklist()

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(2)
			go func(i int) {
				defer wg.Done()
				_ = b.Add(ctx, fmt.Sprintf("token-%d", i), TokenTTL)
			}(i)
			go func(i int) {
				defer wg.Done()
				_, _ = b.Has(ctx, fmt.Sprintf("token-%d", i))
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 50, b.Size())
	})
}

func setupRedisBlacklist(t *testing.T) (*RedisBlacklist, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisBlacklist(client), mr
}

func TestRedisBlacklist(t *testing.T) {
	ctx := context.Background()

	t.Run("revoked token stays revoked", func(t *testing.T) {
		b, _ := setupRedisBlacklist(t)

		require.NoError(t, b.Add(ctx, "token-a", TokenTTL))

		tem, err := b.Has(ctx, "token-a")
		require.NoError(t, err)
		assert.True(t, tem)

		tem, err = b.Has(ctx, "token-b")
		require.NoError(t, err)
		assert.False(t, tem)
	})

	t.Run("entry self-evicts with the redis TTL", func(t *testing.T) {
		b, mr := setupRedisBlacklist(t)

		require.NoError(t, b.Add(ctx, "token-a", time.Minute))
		mr.FastForward(2 * time.Minute)

		tem, err := b.Has(ctx, "token-a")
		require.NoError(t, err)
		assert.False(t, tem)
	})

	t.Run("non-positive ttl falls back to the full token window", func(t *testing.T) {
		b, mr := setupRedisBlacklist(t)

		require.NoError(t, b.Add(ctx, "token-a", 0))

		mr.FastForward(time.Hour)
		tem, err := b.Has(ctx, "token-a")
		require.NoError(t, err)
		assert.True(t, tem)

		mr.FastForward(TokenTTL)
		tem, err = b.Has(ctx, "token-a")
		require.NoError(t, err)
		assert.False(t, tem)
	})
}
