// Package config provides configuration management for the application.
// Settings load in layers: defaults, an optional YAML file, then
// environment variables. A .env file in the working directory is read
// first so local development can keep everything in one place.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"profiletool/internal/storage"
)

// Config holds the application configuration.
type Config struct {
	Server      ServerConfig     `yaml:"server"`
	Admin       AdminConfig      `yaml:"admin"`
	Cache       CacheConfig      `yaml:"cache"`
	Submissions SubmissionConfig `yaml:"submissions"`
	Generator   GeneratorConfig  `yaml:"generator"`
	Logging     LoggingConfig    `yaml:"logging"`
	Metrics     MetricsConfig    `yaml:"metrics"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port      string `yaml:"port"`
	BodyLimit string `yaml:"body_limit"`
}

// AdminConfig holds the admin credential pair. Both fields are required;
// the server derives its shared-secret token from them at startup.
type AdminConfig struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// CacheConfig holds response cache configuration.
type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	// Required makes a broken cache store fatal at startup instead of
	// degrading to a disabled cache.
	Required bool `yaml:"required"`
	// StorageType is "sqlite", "postgresql", or "memory".
	StorageType string `yaml:"storage_type"`
	SQLitePath  string `yaml:"sqlite_path"`
	DatabaseURL string `yaml:"database_url"`
	MaxConns    int    `yaml:"max_conns"`
}

// SubmissionConfig holds submission store configuration.
type SubmissionConfig struct {
	// Backend is "sqlite", "postgresql", "redis", or "memory". Empty means
	// follow the cache storage type.
	Backend  string `yaml:"backend"`
	RedisURL string `yaml:"redis_url"`
}

// GeneratorConfig holds narrative generator configuration. An empty API key
// selects the static generator.
type GeneratorConfig struct {
	OpenAIAPIKey   string `yaml:"openai_api_key"`
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	MaxRetries     int    `yaml:"max_retries"`
}

// LoggingConfig holds logger configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig holds Prometheus endpoint configuration.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// defaults returns the baseline configuration before any file or
// environment override.
func defaults() *Config {
	sc := storage.DefaultConfig()
	return &Config{
		Server: ServerConfig{Port: "8080"},
		Cache: CacheConfig{
			Enabled:     true,
			StorageType: sc.Type,
			SQLitePath:  sc.SQLite.Path,
			MaxConns:    sc.PostgreSQL.MaxConns,
		},
		Generator: GeneratorConfig{
			Model:          "gpt-4o",
			TimeoutSeconds: 60,
			MaxRetries:     2,
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// Load reads configuration in layers: .env file, defaults, the YAML file
// named by CONFIG_FILE (if any), then environment variables. The result is
// validated before it is returned.
func Load() (*Config, error) {
	// Optional; absence is not an error.
	_ = godotenv.Load()

	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides file and default values from the environment.
func applyEnv(cfg *Config) {
	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.Server.BodyLimit, "BODY_LIMIT")

	setString(&cfg.Admin.User, "ADMIN_USER")
	setString(&cfg.Admin.Password, "ADMIN_PASSWORD")

	setBool(&cfg.Cache.Enabled, "CACHE_ENABLED")
	setBool(&cfg.Cache.Required, "CACHE_REQUIRED")
	setString(&cfg.Cache.StorageType, "CACHE_STORAGE_TYPE")
	setString(&cfg.Cache.SQLitePath, "SQLITE_PATH")
	setString(&cfg.Cache.DatabaseURL, "DATABASE_URL")
	setInt(&cfg.Cache.MaxConns, "DATABASE_MAX_CONNS")

	setString(&cfg.Submissions.Backend, "SUBMISSION_BACKEND")
	setString(&cfg.Submissions.RedisURL, "REDIS_URL")

	setString(&cfg.Generator.OpenAIAPIKey, "OPENAI_API_KEY")
	setString(&cfg.Generator.BaseURL, "OPENAI_BASE_URL")
	setString(&cfg.Generator.Model, "OPENAI_MODEL")
	setInt(&cfg.Generator.TimeoutSeconds, "OPENAI_TIMEOUT_SECONDS")
	setInt(&cfg.Generator.MaxRetries, "OPENAI_MAX_RETRIES")

	setString(&cfg.Logging.Level, "LOG_LEVEL")
	setString(&cfg.Logging.Format, "LOG_FORMAT")

	setBool(&cfg.Metrics.Enabled, "METRICS_ENABLED")
}

// Validate rejects configurations that cannot serve.
func (c *Config) Validate() error {
	if c.Admin.User == "" || c.Admin.Password == "" {
		return fmt.Errorf("ADMIN_USER and ADMIN_PASSWORD are required")
	}

	switch c.Cache.StorageType {
	case storage.TypeSQLite, storage.TypeMemory:
	case storage.TypePostgreSQL:
		if c.Cache.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for postgresql storage")
		}
	default:
		return fmt.Errorf("unknown storage type: %s (valid: sqlite, postgresql, memory)", c.Cache.StorageType)
	}

	switch c.Submissions.Backend {
	case "", storage.TypeSQLite, storage.TypeMemory:
	case storage.TypePostgreSQL:
		if c.Cache.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgresql submission backend")
		}
	case "redis":
		if c.Submissions.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required for the redis submission backend")
		}
	default:
		return fmt.Errorf("unknown submission backend: %s (valid: sqlite, postgresql, redis, memory)", c.Submissions.Backend)
	}

	if c.Generator.TimeoutSeconds <= 0 {
		return fmt.Errorf("OPENAI_TIMEOUT_SECONDS must be positive")
	}
	if c.Generator.MaxRetries < 0 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must not be negative")
	}
	return nil
}

// StorageConfig assembles the shared storage configuration for the
// response cache and the SQL submission backends.
func (c *Config) StorageConfig() storage.Config {
	return storage.Config{
		Type:   c.Cache.StorageType,
		SQLite: storage.SQLiteConfig{Path: c.Cache.SQLitePath},
		PostgreSQL: storage.PostgreSQLConfig{
			URL:      c.Cache.DatabaseURL,
			MaxConns: c.Cache.MaxConns,
		},
	}
}

// SubmissionBackend returns the effective submission backend, following the
// cache storage type when none is set.
func (c *Config) SubmissionBackend() string {
	if c.Submissions.Backend != "" {
		return c.Submissions.Backend
	}
	return c.Cache.StorageType
}

// GeneratorTimeout returns the generator timeout as a duration.
func (c *Config) GeneratorTimeout() time.Duration {
	return time.Duration(c.Generator.TimeoutSeconds) * time.Second
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
