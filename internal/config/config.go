package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Quiz     QuizConfig     `yaml:"quiz"`
	Import   ImportConfig   `yaml:"import"`
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
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// AutoMigrate applies embedded goose migrations on server start.
	AutoMigrate bool `yaml:"auto_migrate" env:"DATABASE_AUTO_MIGRATE" env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// QuizConfig holds quiz session settings.
type QuizConfig struct {
	// AdvanceDelay is how long answer feedback stays visible before the
	// session moves to the next question.
	AdvanceDelay  time.Duration `yaml:"advance_delay"  env:"QUIZ_ADVANCE_DELAY"  env-default:"1500ms"`
	MinWords      int           `yaml:"min_words"      env:"QUIZ_MIN_WORDS"      env-default:"3"`
	SessionTTL    time.Duration `yaml:"session_ttl"    env:"QUIZ_SESSION_TTL"    env-default:"30m"`
	SweepInterval time.Duration `yaml:"sweep_interval" env:"QUIZ_SWEEP_INTERVAL" env-default:"1m"`
	MaxSessions   int           `yaml:"max_sessions"   env:"QUIZ_MAX_SESSIONS"   env-default:"1000"`
}

// ImportConfig holds bulk word import settings.
type ImportConfig struct {
	MaxBatch        int   `yaml:"max_batch"          env:"IMPORT_MAX_BATCH"          env-default:"5000"`
	MaxFileBytes    int64 `yaml:"max_file_bytes"     env:"IMPORT_MAX_FILE_BYTES"     env-default:"5242880"`
	RateLimitPerMin int   `yaml:"rate_limit_per_min" env:"IMPORT_RATE_LIMIT_PER_MIN" env-default:"30"`
}
