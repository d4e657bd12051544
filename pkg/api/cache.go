package api

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/platinummonkey/mxlint/pkg/linter"
)

// resultCache memoizes lint results by document content hash. Findings
// for identical bytes are identical, so entries never go stale; the TTL
// only bounds memory held for documents nobody re-posts.
type resultCache struct {
	cache *lru.LRU[string, linter.Result]
}

func newResultCache(maxEntries int, ttl time.Duration) *resultCache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &resultCache{
		cache: lru.NewLRU[string, linter.Result](maxEntries, nil, ttl),
	}
}

// key hashes a document body into a cache key.
func (c *resultCache) key(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

func (c *resultCache) get(key string) (linter.Result, bool) {
	return c.cache.Get(key)
}

func (c *resultCache) set(key string, result linter.Result) {
	c.cache.Add(key, result)
}
