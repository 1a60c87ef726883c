package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Store backends accepted by STREAKMIND_STORE.
const (
	StoreSQLite = "sqlite"
	StoreBolt   = "bolt"
)

// Config aggregates the runtime settings outside the LLM collaborator, which
// keeps its own loader in the llm package.
type Config struct {
	Store        StoreConfig
	StreakPolicy string
	HTTP         HTTPConfig
	Logger       LoggerConfig
}

type StoreConfig struct {
	Backend  string
	DBPath   string
	BoltPath string
}

type HTTPConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	EnableMetrics   bool
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// Load reads configuration from environment variables (optionally .env)
// and applies defaults rooted at the user's home directory.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("finding home directory: %w", err)
	}
	dataDir := filepath.Join(home, ".streakmind")

	cfg := &Config{
		Store: StoreConfig{
			Backend:  getString("STREAKMIND_STORE", StoreSQLite),
			DBPath:   getString("STREAKMIND_DB", filepath.Join(dataDir, "streakmind.db")),
			BoltPath: getString("STREAKMIND_BOLT_PATH", filepath.Join(dataDir, "streakmind.bolt")),
		},
		StreakPolicy: getString("STREAKMIND_STREAK_POLICY", "distinct-days"),
		HTTP: HTTPConfig{
			Addr:            getString("STREAKMIND_HTTP_ADDR", ":5000"),
			ReadTimeout:     getDuration("STREAKMIND_HTTP_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDuration("STREAKMIND_HTTP_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDuration("STREAKMIND_HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
			EnableMetrics:   getBool("STREAKMIND_HTTP_METRICS", true),
		},
		Logger: LoggerConfig{
			Level:    getString("LOG_LEVEL", "warn"),
			Encoding: getString("LOG_ENCODING", "console"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values that would only fail later during wiring.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case StoreSQLite, StoreBolt:
	default:
		return fmt.Errorf("STREAKMIND_STORE: unknown backend %q", c.Store.Backend)
	}
	switch c.Logger.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_ENCODING: unknown encoding %q", c.Logger.Encoding)
	}
	return nil
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
