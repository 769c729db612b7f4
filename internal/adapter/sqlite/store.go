// Package sqlite implements the key-value application state store on an
// embedded SQLite file. It is the default backend for single-user installs.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	sq "github.com/Masterminds/squirrel"
	"github.com/jonboulle/clockwork"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

const table = "app_state"

//go:embed migrations/*.sql
var migrationFiles embed.FS

var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA synchronous=NORMAL",
	"PRAGMA busy_timeout=5000",
	"PRAGMA foreign_keys=ON",
}

// Store is an app_state table in a SQLite database.
type Store struct {
	db    *sql.DB
	sb    sq.StatementBuilderType
	clock clockwork.Clock
}

// Open opens (creating if needed) the database at path and optionally
// applies migrations.
func Open(ctx context.Context, path string, migrate bool, clock clockwork.Clock, log *slog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// A single connection serialises writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	if migrate {
		if err := applyMigrations(ctx, db, log); err != nil {
			db.Close()
			return nil, err
		}
	}

	return &Store{
		db:    db,
		sb:    sq.StatementBuilder.PlaceholderFormat(sq.Question).RunWith(db),
		clock: clock,
	}, nil
}

func applyMigrations(ctx context.Context, db *sql.DB, log *slog.Logger) error {
	fsys, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("embedded migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, r := range results {
		log.InfoContext(ctx, "migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration))
	}
	return nil
}

// Get returns the raw value stored under key. ok is false when the key has
// never been written.
func (s *Store) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	err = s.sb.Select("value").From(table).Where(sq.Eq{"key": key}).
		QueryRowContext(ctx).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s %s: %w", table, key, err)
	}
	return value, true, nil
}

// Put overwrites every given key in one transaction.
func (s *Store) Put(ctx context.Context, values map[string]string) (err error) {
	if len(values) == 0 {
		return nil
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := s.clock.Now().UTC()
	for _, k := range keys {
		_, err = s.sb.RunWith(tx).Insert(table).
			Columns("key", "value", "updated_at").
			Values(k, values[k], now).
			Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
			ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("%s %s: %w", table, k, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
