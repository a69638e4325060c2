package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/courseify/course-api/internal/core/domain"
)

const publishedKey = "catalog:published"

// CatalogCache stores the published course listing as a JSON blob with a TTL.
// Course create/update invalidate it; a stale entry can otherwise outlive a
// visibility change for at most the TTL.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache wraps client. A non-positive ttl disables expiry-based
// refresh and relies on invalidation alone.
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl}
}

// GetPublished returns the cached listing, or (nil, nil) on a cache miss.
func (c *CatalogCache) GetPublished(ctx context.Context) ([]*domain.Course, error) {
	raw, err := c.client.Get(ctx, publishedKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("catalog cache get: %w", err)
	}

	var courses []*domain.Course
	if err := json.Unmarshal(raw, &courses); err != nil {
		// Treat an undecodable entry as a miss; it will be overwritten.
		return nil, nil
	}
	return courses, nil
}

// SetPublished stores the listing under the cache TTL.
func (c *CatalogCache) SetPublished(ctx context.Context, courses []*domain.Course) error {
	raw, err := json.Marshal(courses)
	if err != nil {
		return fmt.Errorf("catalog cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, publishedKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("catalog cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached listing.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, publishedKey).Err(); err != nil {
		return fmt.Errorf("catalog cache invalidate: %w", err)
	}
	return nil
}
