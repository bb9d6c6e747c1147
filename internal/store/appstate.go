// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store persists the application snapshot. The whole AppState is
// written as one JSONB blob on every change under a fixed versioned key:
// there is no partial write and no conflict resolution, last write wins.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"linkpulse/internal/models"
)

// StateKey is the fixed versioned key the snapshot is stored under. The
// key name changes on breaking schema changes; no other migration logic
// exists between versions.
const StateKey = "linkpulse_master_state_v4"

// AppStateStore handles all snapshot database operations.
type AppStateStore struct {
	db *sql.DB
}

// NewAppStateStore creates a new AppStateStore.
func NewAppStateStore(db *sql.DB) *AppStateStore {
	return &AppStateStore{db: db}
}

// Load returns the snapshot stored under StateKey. A missing or corrupt
// row silently falls back to the hardcoded default state; no error is
// surfaced for those cases.
func (s *AppStateStore) Load() (*models.AppState, error) {
	var blob []byte
	err := s.db.QueryRow(`SELECT data FROM app_states WHERE key = $1`, StateKey).Scan(&blob)
	if err == sql.ErrNoRows {
		return models.DefaultState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load app state: %w", err)
	}

	var state models.AppState
	if err := json.Unmarshal(blob, &state); err != nil {
		slog.Warn("stored snapshot is corrupt, using default state", "error", err)
		return models.DefaultState(), nil
	}
	return &state, nil
}

// Save serializes the full snapshot and upserts it under StateKey. The
// profile username is denormalized into its own column so the public
// page can be looked up by path segment.
func (s *AppStateStore) Save(state *models.AppState) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal app state: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO app_states (key, username, data, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (key)
		DO UPDATE SET username = EXCLUDED.username, data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		StateKey, state.Profile.Username, blob,
	)
	if err != nil {
		return fmt.Errorf("save app state: %w", err)
	}
	return nil
}

// FindByUsername returns the snapshot whose profile owns the given
// username, or nil if no page exists there. The public page renderer
// receives this as a read-only copy and never writes it back.
func (s *AppStateStore) FindByUsername(username string) (*models.AppState, error) {
	var blob []byte
	err := s.db.QueryRow(`SELECT data FROM app_states WHERE username = $1`, username).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find app state by username: %w", err)
	}

	var state models.AppState
	if err := json.Unmarshal(blob, &state); err != nil {
		return nil, fmt.Errorf("decode app state for %q: %w", username, err)
	}
	return &state, nil
}

// IncrementClick bumps the click counter of one link inside the snapshot
// owned by username and returns the updated link. The row is locked for
// the read-modify-write so concurrent click-throughs cannot lose counts.
// Returns (nil, nil) when the page or the link does not exist.
func (s *AppStateStore) IncrementClick(username, linkID string) (*models.LinkItem, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var blob []byte
	err = tx.QueryRow(`SELECT data FROM app_states WHERE username = $1 FOR UPDATE`, username).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lock app state: %w", err)
	}

	var state models.AppState
	if err := json.Unmarshal(blob, &state); err != nil {
		return nil, fmt.Errorf("decode app state for %q: %w", username, err)
	}

	if !state.RecordClick(linkID) {
		return nil, nil
	}

	updated, err := json.Marshal(&state)
	if err != nil {
		return nil, fmt.Errorf("marshal app state: %w", err)
	}
	if _, err := tx.Exec(`UPDATE app_states SET data = $1, updated_at = NOW() WHERE username = $2`, updated, username); err != nil {
		return nil, fmt.Errorf("record click: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit click: %w", err)
	}
	return state.FindLink(linkID), nil
}
