// Package lock provides per-key mutual exclusion used to serialise work on a
// single record across concurrent requests.
package lock

import (
	"context"
	"errors"
	"sync"
)

// ErrNotAcquired is returned when the context ends before the lock is held.
var ErrNotAcquired = errors.New("lock not acquired")

// Unlock releases a held lock. It is safe to call more than once.
type Unlock func()

// Locker acquires an exclusive lock on key, blocking until it is held or ctx ends.
type Locker interface {
	Lock(ctx context.Context, key string) (Unlock, error)
}

const numShards = 128

// ShardedLocker is an in-process Locker. Keys hash onto a fixed set of
// shards, so unrelated keys can occasionally contend but the same key always
// maps to the same shard.
type ShardedLocker struct {
	shards [numShards]chan struct{}
}

// NewShardedLocker constructs a ShardedLocker.
func NewShardedLocker() *ShardedLocker {
	l := &ShardedLocker{}
	for i := range l.shards {
		l.shards[i] = make(chan struct{}, 1)
	}
	return l
}

// Lock implements Locker.
func (l *ShardedLocker) Lock(ctx context.Context, key string) (Unlock, error) {
	shard := l.shards[hashKey(key)%numShards]
	select {
	case shard <- struct{}{}:
	case <-ctx.Done():
		return nil, errors.Join(ErrNotAcquired, ctx.Err())
	}
	var once sync.Once
	return func() {
		once.Do(func() { <-shard })
	}, nil
}

// FNV-1a
func hashKey(s string) uint32 {
	const (
		offset = 2166136261
		prime  = 16777619
	)
	h := uint32(offset)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= prime
	}
	return h
}
