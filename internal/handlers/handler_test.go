// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL or Valkey are
// unavailable.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"linkpulse/internal/ai"
	"linkpulse/internal/cache"
	"linkpulse/internal/database"
	"linkpulse/internal/models"
	"linkpulse/internal/render"
	"linkpulse/internal/store"
)

// mockAIProvider implements ai.Provider for handler tests.
type mockAIProvider struct {
	name     string
	response string
	err      error
}

func (m *mockAIProvider) Name() string { return m.name }
func (m *mockAIProvider) Generate(_ context.Context, _, _ string) (string, error) {
	return m.response, m.err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "linkpulse")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "linkpulse")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	if _, err := db.Exec(`DELETE FROM app_states`); err != nil {
		db.Close()
		t.Fatalf("clear app_states: %v", err)
	}

	t.Cleanup(func() {
		db.Exec(`DELETE FROM app_states`)
		db.Close()
	})
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
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

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB        *sql.DB
	Valkey    *redis.Client
	Renderer  *render.Renderer
	States    *store.AppStateStore
	PageCache *cache.PageCache
	Registry  *ai.Registry
	Editor    *Editor
	Public    *Public
}

// newTestEnv creates a complete test environment. The AI registry holds
// a mock provider returning a valid enhancement payload; individual
// tests can Register a different mock.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	renderer, err := render.New(true)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	states := store.NewAppStateStore(db)
	pageCache := cache.NewPageCache(vk, 1*time.Minute)

	registry := ai.NewRegistry("test", map[string]ai.ProviderConfig{})
	registry.Register("test", &mockAIProvider{
		name:     "test",
		response: `{"enhancedBio": "A crisper bio.", "suggestedTitles": ["First", "Second"]}`,
	})

	editor := NewEditor(renderer, states, pageCache, ai.NewEnhancer(registry), nil, "https://lp.test")
	public := NewPublic(renderer, states, pageCache)

	return &testEnv{
		DB:        db,
		Valkey:    vk,
		Renderer:  renderer,
		States:    states,
		PageCache: pageCache,
		Registry:  registry,
		Editor:    editor,
		Public:    public,
	}
}

// seedState saves a known snapshot so handlers have something to mutate.
func seedState(t *testing.T, env *testEnv) *models.AppState {
	t.Helper()

	state := models.DefaultState()
	state.Profile.Username = "seeduser"
	state.Links = []models.LinkItem{
		{ID: "link-1", Title: "Portfolio", URL: "https://portfolio.example.com", Enabled: true},
		{ID: "link-2", Title: "Blog", URL: "https://blog.example.com", Enabled: false},
	}
	if err := env.States.Save(state); err != nil {
		t.Fatalf("seed state: %v", err)
	}
	return state
}

// withChiURLParam adds a chi URL parameter to a request. Calls chain:
// an existing route context is extended, not replaced.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	if rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context); ok {
		rctx.URLParams.Add(key, value)
		return r
	}
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
