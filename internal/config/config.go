package config

import (
	"time"
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Log          LogConfig          `yaml:"log"`
	CORS         CORSConfig         `yaml:"cors"`
	RateLimit    RateLimitConfig    `yaml:"rate_limit"`
	LLM          LLMConfig          `yaml:"llm"`
	Storage      StorageConfig      `yaml:"storage"`
	Vocabulary   VocabularyConfig   `yaml:"vocabulary"`
	Conversation ConversationConfig `yaml:"conversation"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings. File enables a rotating log file in
// addition to stderr.
type LogConfig struct {
	Level      string `yaml:"level"        env:"LOG_LEVEL"        env-default:"info"`
	Format     string `yaml:"format"       env:"LOG_FORMAT"       env-default:"json"`
	File       string `yaml:"file"         env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb"  env:"LOG_MAX_SIZE_MB"  env-default:"100"`
	MaxBackups int    `yaml:"max_backups"  env:"LOG_MAX_BACKUPS"  env-default:"3"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS" env-default:"30"`
}

// RateLimitConfig holds per-client request limits for the API.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"             env-default:"true"`
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"60"`
	Burst             int           `yaml:"burst"               env:"RATE_LIMIT_BURST"               env-default:"10"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}

// LLMConfig holds settings for the hosted text-generation service.
// APIKey is the single external credential and is read from API_KEY.
type LLMConfig struct {
	APIKey           string        `yaml:"-"                   env:"API_KEY"                env-required:"true"`
	BaseURL          string        `yaml:"base_url"            env:"LLM_BASE_URL"`
	Model            string        `yaml:"model"               env:"LLM_MODEL"              env-default:"claude-sonnet-4-5"`
	MaxTokens        int64         `yaml:"max_tokens"          env:"LLM_MAX_TOKENS"         env-default:"2048"`
	Timeout          time.Duration `yaml:"timeout"             env:"LLM_TIMEOUT"            env-default:"90s"`
	WebSearchMaxUses int64         `yaml:"web_search_max_uses" env:"LLM_WEB_SEARCH_MAX_USES" env-default:"5"`
}

// StorageConfig selects and configures the persisted key-value store.
type StorageConfig struct {
	Driver        string         `yaml:"driver"         env:"STORAGE_DRIVER"         env-default:"sqlite"`
	SQLitePath    string         `yaml:"sqlite_path"    env:"STORAGE_SQLITE_PATH"    env-default:"./data/huayu.db"`
	RunMigrations bool           `yaml:"run_migrations" env:"STORAGE_RUN_MIGRATIONS" env-default:"true"`
	Postgres      DatabaseConfig `yaml:"postgres"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"5"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// VocabularyConfig holds flashcard generation settings.
type VocabularyConfig struct {
	DailyLimit int    `yaml:"daily_limit" env:"VOCAB_DAILY_LIMIT" env-default:"10"`
	BatchSize  int    `yaml:"batch_size"  env:"VOCAB_BATCH_SIZE"  env-default:"10"`
	Timezone   string `yaml:"timezone"    env:"VOCAB_TIMEZONE"    env-default:"Local"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// ConversationConfig holds conversation practice settings.
type ConversationConfig struct {
	SessionTTL    time.Duration `yaml:"session_ttl"    env:"CONVERSATION_SESSION_TTL"    env-default:"2h"`
	SweepInterval time.Duration `yaml:"sweep_interval" env:"CONVERSATION_SWEEP_INTERVAL" env-default:"5m"`
	MaxSessions   int           `yaml:"max_sessions"   env:"CONVERSATION_MAX_SESSIONS"   env-default:"50"`
	HistoryLimit  int           `yaml:"history_limit"  env:"CONVERSATION_HISTORY_LIMIT"  env-default:"200"`
}
