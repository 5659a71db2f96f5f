package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage backend names accepted by Load.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// Config holds application configuration
type Config struct {
	StorageBackend string        `yaml:"storage_backend"`
	SQLitePath     string        `yaml:"sqlite_path"`
	DatabaseURL    string        `yaml:"database_url"`
	RedisURL       string        `yaml:"redis_url"`
	DebugMode      bool          `yaml:"debug_mode"`
	StorageTimeout time.Duration `yaml:"storage_timeout"`
}

// Load builds configuration from an optional YAML file (PLANNER_CONFIG, or
// ~/.planner.yaml when present) with environment variables layered on top.
func Load() (*Config, error) {
	cfg := &Config{
		StorageBackend: BackendSQLite,
		SQLitePath:     defaultSQLitePath(),
		StorageTimeout: 5 * time.Second,
	}

	if err := loadFile(cfg); err != nil {
		return nil, err
	}

	cfg.StorageBackend = getEnv("PLANNER_STORAGE_BACKEND", cfg.StorageBackend)
	cfg.SQLitePath = getEnv("PLANNER_SQLITE_PATH", cfg.SQLitePath)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.RedisURL = getEnv("REDIS_URL", cfg.RedisURL)
	cfg.DebugMode = getEnvBool("PLANNER_DEBUG_MODE", cfg.DebugMode)
	if secs := getEnvInt("PLANNER_STORAGE_TIMEOUT_SECONDS", 0); secs > 0 {
		cfg.StorageTimeout = time.Duration(secs) * time.Second
	}

	switch cfg.StorageBackend {
	case BackendSQLite, BackendMemory:
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}
	case BackendRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("REDIS_URL is required for the redis backend")
		}
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	return cfg, nil
}

// loadFile merges the YAML config file into cfg if one exists. A missing file
// is not an error; a malformed one is.
func loadFile(cfg *Config) error {
	path := os.Getenv("PLANNER_CONFIG")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, ".planner.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func defaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "planner.db"
	}
	return filepath.Join(home, ".planner", "planner.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
