package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if err := c.Quiz.validate(); err != nil {
		return fmt.Errorf("quiz: %w", err)
	}
	if err := c.Import.validate(); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	return nil
}

func (q *QuizConfig) validate() error {
	if q.MinWords < 3 {
		return fmt.Errorf("min_words must be >= 3 (got %d)", q.MinWords)
	}
	if q.AdvanceDelay < 0 {
		return fmt.Errorf("advance_delay must be >= 0 (got %v)", q.AdvanceDelay)
	}
	if q.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be > 0 (got %v)", q.SessionTTL)
	}
	if q.SweepInterval <= 0 {
		return fmt.Errorf("sweep_interval must be > 0 (got %v)", q.SweepInterval)
	}
	if q.MaxSessions <= 0 {
		return fmt.Errorf("max_sessions must be > 0 (got %d)", q.MaxSessions)
	}
	return nil
}

func (i *ImportConfig) validate() error {
	if i.MaxBatch <= 0 {
		return fmt.Errorf("max_batch must be > 0 (got %d)", i.MaxBatch)
	}
	if i.MaxFileBytes <= 0 {
		return fmt.Errorf("max_file_bytes must be > 0 (got %d)", i.MaxFileBytes)
	}
	if i.RateLimitPerMin <= 0 {
		return fmt.Errorf("rate_limit_per_min must be > 0 (got %d)", i.RateLimitPerMin)
	}
	return nil
}
