package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Blacklist holds tokens revoked by logout. Entries only need to survive
// until the token's own expiry, so both implementations are TTL-aware.
type Blacklist interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
	Has(ctx context.Context, token string) (bool, error)
}

var blacklist Blacklist = NewMemoryBlacklist()

// SetBlacklist swaps the active registry (redis in multi-instance
// deployments, a fresh in-memory one in tests).
func SetBlacklist(b Blacklist) {
	blacklist = b
}

// ─────────────────────────────────────────────────────────────────────────────
// In-memory registry
// ─────────────────────────────────────────────────────────────────────────────

type MemoryBlacklist struct {
	mu     sync.RWMutex
	tokens map[string]time.Time
}

func NewMemoryBlacklist() *MemoryBlacklist {
	return &MemoryBlacklist{tokens: make(map[string]time.Time)}
}

func (b *MemoryBlacklist) Add(_ context.Context, token string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens[token] = time.Now().Add(ttl)
	return nil
}

func (b *MemoryBlacklist) Has(_ context.Context, token string) (bool, error) {
	b.mu.RLock()
	expira, ok := b.tokens[token]
	b.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if time.Now().After(expira) {
		// Token outlived its own validity window; the entry is moot.
		b.mu.Lock()
		delete(b.tokens, token)
		b.mu.Unlock()
		return false, nil
	}

	return true, nil
}

func (b *MemoryBlacklist) Size() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.tokens)
}

// ─────────────────────────────────────────────────────────────────────────────
// Redis registry
// ─────────────────────────────────────────────────────────────────────────────

type RedisBlacklist struct {
	client *redis.Client
}

func NewRedisBlacklist(client *redis.Client) *RedisBlacklist {
	return &RedisBlacklist{client: client}
}

func (b *RedisBlacklist) Add(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = TokenTTL
	}

	if err := b.client.Set(ctx, blacklistKey(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (b *RedisBlacklist) Has(ctx context.Context, token string) (bool, error) {
	n, err := b.client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists failed: %w", err)
	}
	return n > 0, nil
}

func blacklistKey(token string) string {
	return fmt.Sprintf("blacklist:%s", token)
}
