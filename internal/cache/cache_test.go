// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "page:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestPageCache_SetGet(t *testing.T) {
	pc := NewPageCache(testValkeyClient(t), time.Minute)
	ctx := context.Background()

	if _, ok := pc.Get(ctx, "jane.doe"); ok {
		t.Fatal("unexpected cache hit before set")
	}

	html := []byte("<html>jane</html>")
	pc.Set(ctx, "jane.doe", html)

	got, ok := pc.Get(ctx, "jane.doe")
	if !ok {
		t.Fatal("expected cache hit after set")
	}
	if string(got) != string(html) {
		t.Errorf("cached html = %q", got)
	}
}

func TestPageCache_Invalidate(t *testing.T) {
	pc := NewPageCache(testValkeyClient(t), time.Minute)
	ctx := context.Background()

	pc.Set(ctx, "old.name", []byte("old"))
	pc.Set(ctx, "new.name", []byte("new"))

	// A rename invalidates both the old and new usernames.
	pc.Invalidate(ctx, "old.name", "new.name", "")

	if _, ok := pc.Get(ctx, "old.name"); ok {
		t.Error("old username still cached after invalidation")
	}
	if _, ok := pc.Get(ctx, "new.name"); ok {
		t.Error("new username still cached after invalidation")
	}
}

func TestPageCache_TTL(t *testing.T) {
	pc := NewPageCache(testValkeyClient(t), time.Second)
	ctx := context.Background()

	pc.Set(ctx, "fleeting", []byte("x"))
	time.Sleep(1200 * time.Millisecond)

	if _, ok := pc.Get(ctx, "fleeting"); ok {
		t.Error("entry survived past its TTL")
	}
}
