package cachemanager

import (
	"context"
	"time"
)

// ReadThroughCache serves values from a cache, falling back to fn on a miss
// and storing successful results. Inputs for which skip returns true always
// go to fn and are never stored.
type ReadThroughCache[K ~string, V any, I any] struct {
	cache CacheManager[K, V]
	fn    func(ctx context.Context, input I) (V, error)
	skip  func(input I) bool
}

// NewReadThroughCache wires cache in front of fn. A nil skip caches every input.
func NewReadThroughCache[K ~string, V any, I any](
	cache CacheManager[K, V],
	fn func(ctx context.Context, input I) (V, error),
	skip func(input I) bool,
) *ReadThroughCache[K, V, I] {
	if skip == nil {
		skip = func(I) bool { return false }
	}
	return &ReadThroughCache[K, V, I]{cache: cache, fn: fn, skip: skip}
}

// Get returns the value for key, loading it from fn with input on a miss.
func (r *ReadThroughCache[K, V, I]) Get(ctx context.Context, key K, input I, ttl time.Duration) (V, error) {
	if r.skip(input) {
		return r.fn(ctx, input)
	}

	if value, ok := r.cache.Get(ctx, key); ok {
		return value, nil
	}

	value, err := r.fn(ctx, input)
	if err != nil {
		return value, err
	}

	r.cache.Set(ctx, key, value, ttl)
	return value, nil
}
