package storage

import (
	"fmt"

	"github.com/campuscal/planner/internal/config"
)

// Open builds the gateway selected by the configuration.
func Open(cfg *config.Config) (Gateway, error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		return NewSQLiteStore(cfg.SQLitePath)
	case config.BackendPostgres:
		return NewPostgresStore(cfg.DatabaseURL)
	case config.BackendRedis:
		return NewRedisStore(cfg.RedisURL)
	case config.BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// Ensure concrete types implement the gateway contract.
var (
	_ Gateway = (*SQLiteStore)(nil)
	_ Gateway = (*PostgresStore)(nil)
	_ Gateway = (*RedisStore)(nil)
	_ Gateway = (*MemoryStore)(nil)
)
