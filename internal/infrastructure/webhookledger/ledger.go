package webhookledger

import (
	"context"
	"sync"
	"time"

	"commerce_engine/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "webhook:seen:"

func key(provider, eventID string) string {
	return keyPrefix + provider + ":" + eventID
}

// RedisLedger remembers processed events in Redis with a TTL, so every replica
// shares the same view of redeliveries.
type RedisLedger struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ interfaces.IWebhookEventLedger = (*RedisLedger)(nil)

func NewRedisLedger(rdb *redis.Client, ttl time.Duration) *RedisLedger {
	return &RedisLedger{rdb: rdb, ttl: ttl}
}

func (l *RedisLedger) Seen(ctx context.Context, provider, eventID string) (bool, error) {
	n, err := l.rdb.Exists(ctx, key(provider, eventID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (l *RedisLedger) Remember(ctx context.Context, provider, eventID string) error {
	return l.rdb.Set(ctx, key(provider, eventID), time.Now().UTC().Format(time.RFC3339), l.ttl).Err()
}

// MemoryLedger is the single-process fallback used when Redis is not configured.
// Expired entries are swept on Remember, at most once per ttl.
type MemoryLedger struct {
	mu        sync.Mutex
	ttl       time.Duration
	entries   map[string]time.Time
	nextSweep time.Time
	now       func() time.Time
}

var _ interfaces.IWebhookEventLedger = (*MemoryLedger)(nil)

func NewMemoryLedger(ttl time.Duration) *MemoryLedger {
	return &MemoryLedger{ttl: ttl, entries: make(map[string]time.Time), now: time.Now}
}

func (l *MemoryLedger) Seen(_ context.Context, provider, eventID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	k := key(provider, eventID)
	exp, ok := l.entries[k]
	if !ok {
		return false, nil
	}
	if l.ttl > 0 && l.now().After(exp) {
		delete(l.entries, k)
		return false, nil
	}
	return true, nil
}

func (l *MemoryLedger) Remember(_ context.Context, provider, eventID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	l.sweep(now)
	l.entries[key(provider, eventID)] = now.Add(l.ttl)
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (l *MemoryLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *MemoryLedger) sweep(now time.Time) {
	if l.ttl <= 0 || now.Before(l.nextSweep) {
		return
	}
	for k, exp := range l.entries {
		if now.After(exp) {
			delete(l.entries, k)
		}
	}
	l.nextSweep = now.Add(l.ttl)
}
