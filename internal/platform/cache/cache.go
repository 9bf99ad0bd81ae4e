// Package cache provides a Redis-backed cache for rendered course
// views. The cache sits entirely in the transport layer: the
// progression engine itself performs no network I/O, and every
// mutation invalidates the course's cached view before the next read.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps a Redis client.
type Cache struct {
	Client *redis.Client
	TTL    time.Duration
}

// ParseURL validates a Redis connection URL.
func ParseURL(url string) (*redis.Options, error) {
	if url == "" {
		return nil, fmt.Errorf("cache URL is empty")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid cache URL: %w", err)
	}
	return opts, nil
}

// New creates a new cache client.
func New(ctx context.Context, url string, ttl time.Duration) (*Cache, error) {
	opts, err := ParseURL(url)
	if err != nil {
		return nil, err
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging cache: %w", err)
	}

	return &Cache{Client: client, TTL: ttl}, nil
}

// Close shuts down the cache client.
func (c *Cache) Close() error {
	return c.Client.Close()
}

// HealthCheck verifies the cache connection is alive.
func (c *Cache) HealthCheck(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func courseViewKey(courseID string) string {
	return "course-view:" + courseID
}

// GetCourseView returns the cached rendered view for a course. A nil
// receiver (cache disabled) and a cache miss both report false.
func (c *Cache) GetCourseView(ctx context.Context, courseID string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.Client.Get(ctx, courseViewKey(courseID)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetCourseView stores a rendered course view. Errors are non-fatal;
// the next read recomputes from the engine.
func (c *Cache) SetCourseView(ctx context.Context, courseID string, data []byte) {
	if c == nil {
		return
	}
	c.Client.Set(ctx, courseViewKey(courseID), data, c.TTL)
}

// InvalidateCourse drops a course's cached view after a mutation.
func (c *Cache) InvalidateCourse(ctx context.Context, courseID string) {
	if c == nil {
		return
	}
	c.Client.Del(ctx, courseViewKey(courseID))
}
