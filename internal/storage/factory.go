package storage

import (
	"context"
	"fmt"

	"github.com/meltforce/waytrack/internal/config"
)

// Open creates the storage backend named by the config. The sqlite backend
// is the default; postgres migrations run before the pool is opened.
func Open(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case "memory":
		return NewMemory(), nil
	case "", "sqlite":
		return OpenSQLite(cfg.Dir)
	case "postgres":
		dsn := cfg.Postgres.DSN()
		if err := RunMigrations(dsn, cfg.MigrationsDir); err != nil {
			return nil, fmt.Errorf("migrating postgres: %w", err)
		}
		return OpenPostgres(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
