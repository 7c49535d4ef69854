// Package session keeps per-screen state (order drafts, favourite toggles)
// in process memory and forgets entries that stay idle too long.
package session

import (
	"context"
	"sync"
	"time"
)

type entry[V any] struct {
	value    V
	lastSeen time.Time
}

// Registry maps session keys to values. Every read refreshes the entry's
// idle timer. The registry only guards its own map; values that are mutated
// concurrently need their own locking.
type Registry[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[V]
	ttl     time.Duration
	now     func() time.Time
	onEvict func(K, V)
}

type Option[K comparable, V any] func(*Registry[K, V])

// WithClock replaces time.Now, for tests.
func WithClock[K comparable, V any](now func() time.Time) Option[K, V] {
	return func(r *Registry[K, V]) { r.now = now }
}

// WithEvictHook is called for every entry dropped by Sweep or Delete.
func WithEvictHook[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(r *Registry[K, V]) { r.onEvict = fn }
}

// New creates a registry. A ttl <= 0 disables expiry.
func New[K comparable, V any](ttl time.Duration, opts ...Option[K, V]) *Registry[K, V] {
	r := &Registry[K, V]{
		entries: make(map[K]*entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry[K, V]) Get(key K) (V, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	e.lastSeen = r.now()
	return e.value, true
}

func (r *Registry[K, V]) Put(key K, value V) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = &entry[V]{value: value, lastSeen: r.now()}
}

// GetOrCreate returns the value stored under key, creating it with create
// when absent. created reports whether create ran.
func (r *Registry[K, V]) GetOrCreate(key K, create func() V) (value V, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[key]; ok {
		e.lastSeen = r.now()
		return e.value, false
	}
	v := create()
	r.entries[key] = &entry[V]{value: v, lastSeen: r.now()}
	return v, true
}

func (r *Registry[K, V]) Delete(key K) (V, bool) {
	r.mu.Lock()
	e, ok := r.entries[key]
	if ok {
		delete(r.entries, key)
	}
	r.mu.Unlock()

	if !ok {
		var zero V
		return zero, false
	}
	if r.onEvict != nil {
		r.onEvict(key, e.value)
	}
	return e.value, true
}

func (r *Registry[K, V]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep drops entries idle for longer than the ttl and returns how many
// were dropped.
func (r *Registry[K, V]) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}

	type evicted struct {
		key   K
		value V
	}
	var dropped []evicted

	r.mu.Lock()
	cutoff := r.now().Add(-r.ttl)
	for k, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			dropped = append(dropped, evicted{key: k, value: e.value})
			delete(r.entries, k)
		}
	}
	r.mu.Unlock()

	if r.onEvict != nil {
		for _, d := range dropped {
			r.onEvict(d.key, d.value)
		}
	}
	return len(dropped)
}

// Run sweeps every interval until ctx is done.
func (r *Registry[K, V]) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 || r.ttl <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}
