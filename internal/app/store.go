package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/huayu-backend/internal/adapter/memory"
	"github.com/heartmarshall/huayu-backend/internal/adapter/postgres"
	"github.com/heartmarshall/huayu-backend/internal/adapter/postgres/state"
	"github.com/heartmarshall/huayu-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/huayu-backend/internal/config"
)

// stateStore is the key-value backend shared by all services.
type stateStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, values map[string]string) error
	Ping(ctx context.Context) error
}

// openStore opens the backend selected by cfg.Driver. The returned close
// function is never nil.
func openStore(ctx context.Context, cfg config.StorageConfig, clock clockwork.Clock, log *slog.Logger) (stateStore, func(), error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		st, err := sqlite.Open(ctx, cfg.SQLitePath, cfg.RunMigrations, clock, log)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return st, func() {
			if err := st.Close(); err != nil {
				log.Warn("close sqlite store", slog.String("error", err.Error()))
			}
		}, nil

	case config.DriverPostgres:
		if cfg.RunMigrations {
			if err := postgres.Migrate(ctx, cfg.Postgres.DSN, log); err != nil {
				return nil, nil, fmt.Errorf("migrate postgres: %w", err)
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}
		return state.New(pool, clock), pool.Close, nil

	case config.DriverMemory:
		log.Warn("using in-memory store, saved words and quota are lost on restart")
		return memory.New(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
