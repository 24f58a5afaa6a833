package api

import (
	"context"
	"encoding/json"
	"time"

	"github.com/instructvault/ivault-playground/internal/cachemanager"
)

// SpecKey identifies a cached spec: reference and prompt path.
type SpecKey string

func specKey(path, ref string) SpecKey {
	return SpecKey(ref + "\x00" + path)
}

type specInput struct {
	path string
	ref  string
}

// CachedClient serves specs fetched under a named reference from an
// in-memory cache. Specs of the working tree (empty ref) can change at any
// moment and always go to the server.
type CachedClient struct {
	*Client
	specs *cachemanager.ReadThroughCache[SpecKey, json.RawMessage, specInput]
	ttl   time.Duration
}

// NewCachedClient wraps c with a spec cache whose entries live for ttl.
func NewCachedClient(c *Client, cache cachemanager.CacheManager[SpecKey, json.RawMessage], ttl time.Duration) *CachedClient {
	return &CachedClient{
		Client: c,
		specs: cachemanager.NewReadThroughCache(
			cache,
			func(ctx context.Context, in specInput) (json.RawMessage, error) {
				return c.Prompt(ctx, in.path, in.ref)
			},
			func(in specInput) bool { return in.ref == "" },
		),
		ttl: ttl,
	}
}

// Prompt returns the spec of path under ref, from cache when possible.
func (c *CachedClient) Prompt(ctx context.Context, path, ref string) (json.RawMessage, error) {
	return c.specs.Get(ctx, specKey(path, ref), specInput{path: path, ref: ref}, c.ttl)
}
