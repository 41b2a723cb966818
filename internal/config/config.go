// Package config provides configuration management for Stageline.
//
// Configuration is loaded from:
// 1. config.yaml file (optional)
// 2. Environment variables (standard names like DATABASE_URL, SERVER_PORT)
// 3. Default values
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config is the root configuration structure.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log"`
	River     RiverConfig     `mapstructure:"river"`
	Security  SecurityConfig  `mapstructure:"security"`
	Worker    WorkerConfig    `mapstructure:"worker"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// CORS settings for the browser dashboard.
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

// DatabaseConfig contains PostgreSQL connection settings.
// A single pgxpool is shared by Ent and River so transition writes and job
// enqueues can share one transaction.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`

	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"sslmode"`

	// Pool configuration (shared by Ent and River)
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`

	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL connection string.
// Priority: DATABASE_URL > constructed from individual fields.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, sslmode,
	)
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// RiverConfig contains River queue settings.
type RiverConfig struct {
	MaxWorkers                  int           `mapstructure:"max_workers"`
	CompletedJobRetentionPeriod time.Duration `mapstructure:"completed_job_retention_period"`
}

// SecurityConfig contains security-related settings.
// The session secret is auto-generated on first boot if missing.
type SecurityConfig struct {
	SessionSecret string        `mapstructure:"session_secret"`
	TokenTTL      time.Duration `mapstructure:"token_ttl"`
	TokenIssuer   string        `mapstructure:"token_issuer"`
}

// WorkerConfig contains worker pool settings.
type WorkerConfig struct {
	GeneralPoolSize   int `mapstructure:"general_pool_size"`
	AnalyticsPoolSize int `mapstructure:"analytics_pool_size"`
}

// AnalyticsConfig contains dashboard analytics settings.
type AnalyticsConfig struct {
	// UpcomingLimit caps the upcoming-projects list.
	UpcomingLimit int `mapstructure:"upcoming_limit"`

	// ActivityLimit caps the recent-activity feed.
	ActivityLimit int `mapstructure:"activity_limit"`

	// VelocityPairs caps the number of reported transition pairs.
	VelocityPairs int `mapstructure:"velocity_pairs"`

	// SectionTimeout bounds each dashboard section's datastore reads.
	SectionTimeout time.Duration `mapstructure:"section_timeout"`

	// NotificationRetention bounds how long read inbox rows are kept.
	NotificationRetention time.Duration `mapstructure:"notification_retention"`
}

var (
	bootstrapLoggerOnce sync.Once
	bootstrapLogger     *zap.Logger
)

// Load reads configuration from file and environment variables.
// Standard environment variables without prefix (DATABASE_URL, SERVER_PORT,
// LOG_LEVEL, ...); nested keys map as database.max_conns → DATABASE_MAX_CONNS.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/stageline")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file is optional, use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.ensureSecrets(); err != nil {
		return nil, fmt.Errorf("ensure secrets: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks for critical configuration errors.
func (c *Config) Validate() error {
	if c.Security.SessionSecret == "" {
		return fmt.Errorf("security.session_secret must not be empty")
	}
	if len(c.Security.SessionSecret) < 32 {
		return fmt.Errorf("security.session_secret must be at least 32 characters")
	}
	if c.Analytics.UpcomingLimit <= 0 {
		return fmt.Errorf("analytics.upcoming_limit must be positive")
	}
	if c.Analytics.ActivityLimit <= 0 {
		return fmt.Errorf("analytics.activity_limit must be positive")
	}
	return nil
}

// ensureSecrets auto-generates missing secrets.
func (c *Config) ensureSecrets() error {
	if c.Security.SessionSecret == "" {
		secret, err := generateSecureRandomHex(32)
		if err != nil {
			return fmt.Errorf("auto-generate session secret: %w", err)
		}
		c.Security.SessionSecret = secret
		logBootstrapWarn(
			"auto-generated session_secret; set SECURITY_SESSION_SECRET env var for persistence",
			zap.Int("length", len(secret)),
		)
	}
	return nil
}

func logBootstrapWarn(msg string, fields ...zap.Field) {
	bootstrapLoggerOnce.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

		l, err := cfg.Build()
		if err != nil {
			bootstrapLogger = zap.NewNop()
			return
		}
		bootstrapLogger = l
	})

	bootstrapLogger.Warn(msg, fields...)
}

// generateSecureRandomHex produces a hex-encoded string of n random bytes.
func generateSecureRandomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("crypto/rand: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("server.allow_credentials", true)

	// Database (shared pool)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "stageline")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "stageline")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 50)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.max_conn_lifetime", "1h")
	v.SetDefault("database.max_conn_idle_time", "10m")
	v.SetDefault("database.auto_migrate", false)

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// River
	v.SetDefault("river.max_workers", 10)
	v.SetDefault("river.completed_job_retention_period", "24h")

	// Security
	v.SetDefault("security.token_ttl", "24h")
	v.SetDefault("security.token_issuer", "stageline")

	// Worker pools
	v.SetDefault("worker.general_pool_size", 100)
	v.SetDefault("worker.analytics_pool_size", 64)

	// Analytics
	v.SetDefault("analytics.upcoming_limit", 6)
	v.SetDefault("analytics.activity_limit", 6)
	v.SetDefault("analytics.velocity_pairs", 5)
	v.SetDefault("analytics.section_timeout", "5s")
	v.SetDefault("analytics.notification_retention", "2160h") // 90 days
}
