package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	// Billing time zones must resolve on hosts without zoneinfo.
	_ "time/tzdata"

	"github.com/spf13/viper"
)

// Config holds all configuration for the portal.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Billing  BillingConfig  `mapstructure:"billing"`
	Sweep    SweepConfig    `mapstructure:"sweep"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
}

// ServerConfig defines HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	// PayRateLimit is the sustained number of payment requests per second.
	PayRateLimit float64 `mapstructure:"pay_rate_limit"`
	PayBurst     int     `mapstructure:"pay_burst"`
}

// DatabaseConfig selects the storage backend.
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	URL      string `mapstructure:"url"`
	MaxConns int32  `mapstructure:"max_conns"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// BillingConfig holds billing rules.
type BillingConfig struct {
	Timezone        string `mapstructure:"timezone"`
	DefaultPageSize int    `mapstructure:"default_page_size"`
	MaxPageSize     int    `mapstructure:"max_page_size"`
}

// SweepConfig controls the in-process overdue sweep. An empty schedule
// disables it.
type SweepConfig struct {
	Schedule string `mapstructure:"schedule"`
}

// KafkaConfig defines the lifecycle event producer.
type KafkaConfig struct {
	Enabled  bool     `mapstructure:"enabled"`
	Brokers  []string `mapstructure:"brokers"`
	Topic    string   `mapstructure:"topic"`
	ClientID string   `mapstructure:"client_id"`
}

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Location returns the billing time zone. LoadConfig has already checked
// that it loads.
func (b BillingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SlogLevel maps the configured level name onto slog.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// LoadConfig loads config.yaml from configPath (or the working directory)
// and applies AGUAPAGO_* environment overrides.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("AGUAPAGO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Conventional deployment variables.
	_ = v.BindEnv("server.port", "AGUAPAGO_SERVER_PORT", "PORT")
	_ = v.BindEnv("database.url", "AGUAPAGO_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("logging.level", "AGUAPAGO_LOGGING_LEVEL", "LOG_LEVEL")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		slog.Debug("config file not found, using defaults and environment", "path", configPath)
	} else {
		slog.Debug("using config file", "file", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.pay_rate_limit", 5.0)
	v.SetDefault("server.pay_burst", 10)
	v.SetDefault("database.driver", DriverMemory)
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("billing.timezone", "America/Bogota")
	v.SetDefault("billing.default_page_size", 10)
	v.SetDefault("billing.max_page_size", 100)
	v.SetDefault("sweep.schedule", "")
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.topic", "aguapago.bills")
	v.SetDefault("kafka.client_id", "aguapago")
}

// Validate checks critical configuration.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("database.url must be set for the postgres driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive")
	}
	if c.Billing.DefaultPageSize <= 0 || c.Billing.MaxPageSize <= 0 {
		return fmt.Errorf("billing page sizes must be positive")
	}
	if c.Billing.DefaultPageSize > c.Billing.MaxPageSize {
		return fmt.Errorf("billing.default_page_size exceeds billing.max_page_size")
	}
	if _, err := time.LoadLocation(c.Billing.Timezone); err != nil {
		return fmt.Errorf("billing.timezone: %w", err)
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be text or json")
	}
	if c.Kafka.Enabled {
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka brokers must be specified")
		}
		if c.Kafka.Topic == "" {
			return fmt.Errorf("kafka topic must be specified")
		}
	}
	return nil
}
