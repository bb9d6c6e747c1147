// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// page.go provides a Valkey-backed full-page HTML cache for the public
// profile pages. A rendered page is stored under its username so repeat
// visitors skip the snapshot query and template execution entirely. Every
// editor save invalidates the cached page, keeping the public surface in
// step with the snapshot.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// pageKeyPrefix is the Valkey key prefix for cached pages.
	pageKeyPrefix = "page:"

	// DefaultPageTTL is how long a rendered page stays cached.
	DefaultPageTTL = 5 * time.Minute
)

// PageCache manages full-page HTML caching in Valkey.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a new page cache backed by the given Valkey client.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl == 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{client: client, ttl: ttl}
}

// Get retrieves the cached HTML for a username. Returns false on miss.
func (pc *PageCache) Get(ctx context.Context, username string) ([]byte, bool) {
	val, err := pc.client.Get(ctx, pageKeyPrefix+username).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("page cache get error", "username", username, "error", err)
		return nil, false
	}
	slog.Debug("page cache hit", "username", username)
	return val, true
}

// Set stores rendered HTML for a username with the configured TTL.
func (pc *PageCache) Set(ctx context.Context, username string, html []byte) {
	if err := pc.client.Set(ctx, pageKeyPrefix+username, html, pc.ttl).Err(); err != nil {
		slog.Warn("page cache set error", "username", username, "error", err)
	}
}

// Invalidate removes the cached page for a username. Called on every
// snapshot save; passing the pre-save username as well covers renames.
func (pc *PageCache) Invalidate(ctx context.Context, usernames ...string) {
	for _, u := range usernames {
		if u == "" {
			continue
		}
		if err := pc.client.Del(ctx, pageKeyPrefix+u).Err(); err != nil {
			slog.Warn("page cache invalidate error", "username", u, "error", err)
		}
		slog.Debug("page cache invalidated", "username", u)
	}
}
