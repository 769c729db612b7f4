package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("llm: API_KEY is required")
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm: max_tokens must be > 0 (got %d)", c.LLM.MaxTokens)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := c.Vocabulary.validate(); err != nil {
		return fmt.Errorf("vocabulary: %w", err)
	}

	if c.Conversation.MaxSessions <= 0 {
		return fmt.Errorf("conversation: max_sessions must be > 0 (got %d)", c.Conversation.MaxSessions)
	}
	if c.Conversation.SessionTTL <= 0 {
		return fmt.Errorf("conversation: session_ttl must be > 0 (got %s)", c.Conversation.SessionTTL)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerMinute <= 0 {
			return fmt.Errorf("rate_limit: requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
		}
		if c.RateLimit.CleanupInterval <= 0 {
			return fmt.Errorf("rate_limit: cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval)
		}
	}

	return nil
}

func (s *StorageConfig) validate() error {
	switch s.Driver {
	case DriverSQLite:
		if s.SQLitePath == "" {
			return fmt.Errorf("sqlite_path is required for driver %q", s.Driver)
		}
	case DriverPostgres:
		if s.Postgres.DSN == "" {
			return fmt.Errorf("postgres.dsn is required for driver %q", s.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown driver %q (want sqlite, postgres or memory)", s.Driver)
	}
	return nil
}

func (v *VocabularyConfig) validate() error {
	if v.DailyLimit <= 0 {
		return fmt.Errorf("daily_limit must be > 0 (got %d)", v.DailyLimit)
	}
	if v.BatchSize <= 0 || v.BatchSize > 50 {
		return fmt.Errorf("batch_size must be in 1..50 (got %d)", v.BatchSize)
	}

	loc, err := ParseTimezone(v.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	v.Location = loc

	return nil
}

// ParseTimezone resolves a time zone name. "Local" and the empty string map
// to the process-local zone.
func ParseTimezone(tz string) (*time.Location, error) {
	if tz == "" || tz == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", tz, err)
	}
	return loc, nil
}
