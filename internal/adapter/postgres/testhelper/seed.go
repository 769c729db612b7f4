package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedState writes a raw app_state row, bypassing the repository.
func SeedState(t *testing.T, pool *pgxpool.Pool, key, value string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO app_state (key, value, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("SeedState(%s): %v", key, err)
	}
}
