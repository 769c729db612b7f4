// Package state implements the key-value application state store using
// PostgreSQL. All keys live in the app_state table.
package state

import (
	"context"
	"errors"
	"fmt"
	"slices"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jonboulle/clockwork"

	postgres "github.com/heartmarshall/huayu-backend/internal/adapter/postgres"
)

const table = "app_state"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides app state persistence backed by PostgreSQL.
type Repo struct {
	db    postgres.DB
	tx    *postgres.TxManager
	clock clockwork.Clock
}

// New creates a new state repository.
func New(db postgres.DB, clock clockwork.Clock) *Repo {
	return &Repo{db: db, tx: postgres.NewTxManager(db), clock: clock}
}

// Get returns the raw value stored under key. ok is false when the key has
// never been written.
func (r *Repo) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	query, args, err := psql.Select("value").From(table).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return "", false, fmt.Errorf("build select: %w", err)
	}

	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, postgres.MapError(err, table, key)
	}
	return value, true, nil
}

// Put overwrites every given key in one transaction.
func (r *Repo) Put(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	now := r.clock.Now().UTC()

	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.db)
		for _, k := range keys {
			query, args, err := psql.Insert(table).
				Columns("key", "value", "updated_at").
				Values(k, values[k], now).
				Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
				ToSql()
			if err != nil {
				return fmt.Errorf("build upsert: %w", err)
			}
			if _, err := q.Exec(ctx, query, args...); err != nil {
				return postgres.MapError(err, table, k)
			}
		}
		return nil
	})
}

// Ping checks database connectivity.
func (r *Repo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
