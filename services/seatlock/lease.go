// Package seatlock provides the degraded-mode seat lease: a best-effort,
// time-boxed exclusion keyed by (busId, seatNumber). It is NOT a durable
// booking guarantee and callers must report it to clients as weaker.
package seatlock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// DefaultTTL is the fixed lease window for a held seat.
const DefaultTTL = 5 * time.Minute

// Lease grants short-lived exclusive holds on seats. Acquire returns false
// when the seat is already held by an unexpired lease.
type Lease interface {
	Acquire(ctx context.Context, busID, seatNumber string) (bool, error)
	Release(ctx context.Context, busID, seatNumber string) error
}

func leaseKey(busID, seatNumber string) string {
	return fmt.Sprintf("seatlease:%s:%s", busID, seatNumber)
}

// RedisLease backs leases with SETNX + TTL, giving exclusion that survives
// process restarts as long as Redis itself is up.
type RedisLease struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisLease(client *redis.Client, ttl time.Duration) *RedisLease {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisLease{Client: client, TTL: ttl}
}

func (l *RedisLease) Acquire(ctx context.Context, busID, seatNumber string) (bool, error) {
	ok, err := l.Client.SetNX(ctx, leaseKey(busID, seatNumber), time.Now().Unix(), l.TTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire seat lease: %w", err)
	}
	return ok, nil
}

func (l *RedisLease) Release(ctx context.Context, busID, seatNumber string) error {
	if err := l.Client.Del(ctx, leaseKey(busID, seatNumber)).Err(); err != nil {
		return fmt.Errorf("failed to release seat lease: %w", err)
	}
	return nil
}

// MemoryLease is the last-resort lease when both the store and Redis are
// unreachable: a process-local map from lease key to hold time. A seat is
// unavailable only while now - heldAt < TTL; past that the hold is expired
// and the seat is offered again.
type MemoryLease struct {
	mu   sync.Mutex
	held map[string]time.Time
	ttl  time.Duration

	// Now is swappable for tests.
	Now func() time.Time
}

func NewMemoryLease(ttl time.Duration) *MemoryLease {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryLease{
		held: make(map[string]time.Time),
		ttl:  ttl,
		Now:  time.Now,
	}
}

func (l *MemoryLease) Acquire(_ context.Context, busID, seatNumber string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := leaseKey(busID, seatNumber)
	now := l.Now()
	if heldAt, ok := l.held[key]; ok && now.Sub(heldAt) < l.ttl {
		return false, nil
	}
	l.held[key] = now
	return true, nil
}

func (l *MemoryLease) Release(_ context.Context, busID, seatNumber string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, leaseKey(busID, seatNumber))
	return nil
}
