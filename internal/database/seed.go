package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"linkpulse/internal/models"
	"linkpulse/internal/store"
)

// Seed populates the database with the default AppState snapshot when no
// snapshot has been stored yet. Safe to call on every startup; it is a
// no-op once a snapshot exists.
func Seed(db *sql.DB) error {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM app_states WHERE key = $1`, store.StateKey).Scan(&count)
	if err != nil {
		return fmt.Errorf("seed check snapshot: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	state := models.DefaultState()
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("seed marshal default state: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO app_states (key, username, data)
		VALUES ($1, $2, $3)
	`, store.StateKey, state.Profile.Username, blob)
	if err != nil {
		return fmt.Errorf("seed insert default state: %w", err)
	}

	slog.Info("database seeded with default state",
		"username", state.Profile.Username,
	)

	return nil
}
