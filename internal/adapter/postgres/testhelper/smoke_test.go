package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	key := "smoke_" + uuid.NewString()
	SeedState(t, pool, key, "ok")

	var value string
	err := pool.QueryRow(context.Background(), `SELECT value FROM app_state WHERE key = $1`, key).Scan(&value)
	if err != nil {
		t.Fatalf("expected row in DB, got error: %v", err)
	}
	if value != "ok" {
		t.Fatalf("expected value %q, got %q", "ok", value)
	}
}
