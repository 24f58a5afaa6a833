package cachemanager

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fetchInput struct {
	ref  string
	path string
}

func TestReadThroughCache_LoadsOnceThenServesFromCache(t *testing.T) {
	ctx := context.Background()
	calls := 0
	rt := NewReadThroughCache[string, string, fetchInput](
		NewInMemoryCacheManager[string, string]("specs", DefaultExpiration, DefaultCleanupInterval),
		func(_ context.Context, in fetchInput) (string, error) {
			calls++
			return in.ref + ":" + in.path, nil
		},
		nil,
	)

	for range 3 {
		got, err := rt.Get(ctx, "v1|a", fetchInput{ref: "v1", path: "a"}, DefaultExpiration)
		require.NoError(t, err)
		require.Equal(t, "v1:a", got)
	}
	require.Equal(t, 1, calls)
}

func TestReadThroughCache_SkipBypassesCache(t *testing.T) {
	ctx := context.Background()
	calls := 0
	cache := NewInMemoryCacheManager[string, string]("specs", DefaultExpiration, DefaultCleanupInterval)
	rt := NewReadThroughCache[string, string, fetchInput](
		cache,
		func(_ context.Context, in fetchInput) (string, error) {
			calls++
			return in.path, nil
		},
		func(in fetchInput) bool { return in.ref == "" },
	)

	for range 2 {
		_, err := rt.Get(ctx, "|a", fetchInput{path: "a"}, DefaultExpiration)
		require.NoError(t, err)
	}
	require.Equal(t, 2, calls)
	require.Equal(t, 0, cache.Len())
}

func TestReadThroughCache_ErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	calls := 0
	rt := NewReadThroughCache[string, string, fetchInput](
		NewInMemoryCacheManager[string, string]("specs", DefaultExpiration, DefaultCleanupInterval),
		func(_ context.Context, _ fetchInput) (string, error) {
			calls++
			if calls == 1 {
				return "", errors.New("boom")
			}
			return "ok", nil
		},
		nil,
	)

	_, err := rt.Get(ctx, "k", fetchInput{ref: "v1"}, DefaultExpiration)
	require.Error(t, err)

	got, err := rt.Get(ctx, "k", fetchInput{ref: "v1"}, DefaultExpiration)
	require.NoError(t, err)
	require.Equal(t, "ok", got)
	require.Equal(t, 2, calls)
}
