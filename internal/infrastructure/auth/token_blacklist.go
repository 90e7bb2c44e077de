package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist invalidates JWTs before they expire, on sign-out (one
// token by JTI) and on access revocation (every token of an owner).
type TokenBlacklist interface {
	// AddToBlacklist revokes a token by JTI; ttl should be the token's remaining lifetime
	AddToBlacklist(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
	// InvalidateOwner rejects every token of ownerID issued up to now
	InvalidateOwner(ctx context.Context, ownerID string, ttl time.Duration) error
	IsOwnerInvalidated(ctx context.Context, ownerID string, issuedAt time.Time) (bool, error)
}

const blacklistKeyPrefix = "token:blacklist:"

// RedisTokenBlacklist shares revocations between server instances and with bizctl
type RedisTokenBlacklist struct {
	client    redis.UniversalClient
	keyPrefix string
	now       func() time.Time
}

// NewRedisTokenBlacklist creates a Redis-backed token blacklist
func NewRedisTokenBlacklist(client redis.UniversalClient) *RedisTokenBlacklist {
	return &RedisTokenBlacklist{
		client:    client,
		keyPrefix: blacklistKeyPrefix,
		now:       time.Now,
	}
}

func (b *RedisTokenBlacklist) jtiKey(jti string) string {
	return b.keyPrefix + "jti:" + jti
}

func (b *RedisTokenBlacklist) ownerKey(ownerID string) string {
	return b.keyPrefix + "owner:" + ownerID
}

// AddToBlacklist implements TokenBlacklist
func (b *RedisTokenBlacklist) AddToBlacklist(ctx context.Context, jti string, ttl time.Duration) error {
	if err := b.client.Set(ctx, b.jtiKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to add token to blacklist: %w", err)
	}
	return nil
}

// IsBlacklisted implements TokenBlacklist
func (b *RedisTokenBlacklist) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, b.jtiKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return n > 0, nil
}

// InvalidateOwner implements TokenBlacklist
func (b *RedisTokenBlacklist) InvalidateOwner(ctx context.Context, ownerID string, ttl time.Duration) error {
	if err := b.client.Set(ctx, b.ownerKey(ownerID), b.now().Unix(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to invalidate owner tokens: %w", err)
	}
	return nil
}

// IsOwnerInvalidated implements TokenBlacklist
func (b *RedisTokenBlacklist) IsOwnerInvalidated(ctx context.Context, ownerID string, issuedAt time.Time) (bool, error) {
	raw, err := b.client.Get(ctx, b.ownerKey(ownerID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check owner token invalidation: %w", err)
	}

	cutoff, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false, fmt.Errorf("failed to parse invalidation timestamp: %w", err)
	}
	return issuedAt.Unix() <= cutoff, nil
}

var _ TokenBlacklist = (*RedisTokenBlacklist)(nil)

// InMemoryTokenBlacklist is process-local. Revocations made by bizctl in
// another process are not seen.
type InMemoryTokenBlacklist struct {
	mu     sync.Mutex
	jtis   map[string]time.Time // jti -> expiry
	owners map[string]time.Time // ownerID -> cutoff
	now    func() time.Time
}

// NewInMemoryTokenBlacklist creates an in-memory token blacklist
func NewInMemoryTokenBlacklist() *InMemoryTokenBlacklist {
	return &InMemoryTokenBlacklist{
		jtis:   make(map[string]time.Time),
		owners: make(map[string]time.Time),
		now:    time.Now,
	}
}

// AddToBlacklist implements TokenBlacklist
func (b *InMemoryTokenBlacklist) AddToBlacklist(_ context.Context, jti string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.jtis[jti] = b.now().Add(ttl)
	return nil
}

// IsBlacklisted implements TokenBlacklist; expired entries are dropped lazily
func (b *InMemoryTokenBlacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	expiry, ok := b.jtis[jti]
	if !ok {
		return false, nil
	}
	if b.now().After(expiry) {
		delete(b.jtis, jti)
		return false, nil
	}
	return true, nil
}

// InvalidateOwner implements TokenBlacklist
func (b *InMemoryTokenBlacklist) InvalidateOwner(_ context.Context, ownerID string, _ time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.owners[ownerID] = b.now()
	return nil
}

// IsOwnerInvalidated implements TokenBlacklist
func (b *InMemoryTokenBlacklist) IsOwnerInvalidated(_ context.Context, ownerID string, issuedAt time.Time) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cutoff, ok := b.owners[ownerID]
	if !ok {
		return false, nil
	}
	return !issuedAt.After(cutoff), nil
}

var _ TokenBlacklist = (*InMemoryTokenBlacklist)(nil)
