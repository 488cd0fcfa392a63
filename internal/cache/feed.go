// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// feed.go provides a Valkey-backed cache for the public quick-memo feed.
// The feed is the only unauthenticated read that hits the database, so its
// encoded JSON is kept in Valkey and invalidated on every memo mutation.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// feedKeyPrefix is the Valkey key prefix for cached feed responses.
	feedKeyPrefix = "feed:"

	// DefaultFeedTTL is how long a cached feed stays valid. Mutations
	// invalidate eagerly, so the TTL only bounds staleness after a write
	// path failure.
	DefaultFeedTTL = time.Minute
)

// FeedCache manages cached quick-memo feed responses in Valkey.
type FeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFeedCache creates a feed cache backed by the given Valkey client.
func NewFeedCache(client *redis.Client, ttl time.Duration) *FeedCache {
	if ttl == 0 {
		ttl = DefaultFeedTTL
	}
	return &FeedCache{client: client, ttl: ttl}
}

// MemoKey returns the cache key for a memo feed page of the given size.
func MemoKey(limit int) string {
	return fmt.Sprintf("memos:%d", limit)
}

// Get retrieves a cached feed body. Returns false on miss.
func (fc *FeedCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := fc.client.Get(ctx, feedKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("feed cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("feed cache hit", "key", key)
	return val, true
}

// Set stores an encoded feed body with the configured TTL.
func (fc *FeedCache) Set(ctx context.Context, key string, body []byte) {
	if err := fc.client.Set(ctx, feedKeyPrefix+key, body, fc.ttl).Err(); err != nil {
		slog.Warn("feed cache set error", "key", key, "error", err)
	}
}

// InvalidateAll removes every cached feed page by scanning for the prefix.
// Called after memo creation and deletion, since any page could be affected.
func (fc *FeedCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := fc.client.Scan(ctx, cursor, feedKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("feed cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := fc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("feed cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Debug("feed cache cleared", "deleted", deleted)
	}
}
