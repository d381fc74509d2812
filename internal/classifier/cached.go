package classifier

import (
	"context"
	"strings"
	"time"

	"tally/internal/cache"
)

const (
	cacheMaxEntries = 1000
	cacheTTL        = 24 * time.Hour
)

// Cached wraps a Categorizer with an LRU cache keyed by the normalized
// description, so repeated purchases skip the model call.
type Cached struct {
	inner Categorizer
	cache cache.Cache[string]
}

func NewCached(inner Categorizer) *Cached {
	return &Cached{
		inner: inner,
		cache: cache.NewLRUCache[string](cacheMaxEntries, cacheTTL),
	}
}

func (c *Cached) Categorize(ctx context.Context, description string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(description))

	if category, ok := c.cache.Get(key); ok {
		return category, nil
	}

	category, err := c.inner.Categorize(ctx, description)
	if err != nil {
		return "", err
	}

	c.cache.Set(key, category)
	return category, nil
}
