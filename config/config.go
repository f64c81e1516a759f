package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Catalog sources
const (
	CatalogSourceEmbedded = "embedded"
	CatalogSourceDynamoDB = "dynamodb"
)

// Config is the main application configuration struct.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Swipe   SwipeConfig   `mapstructure:"swipe"`
	Session SessionConfig `mapstructure:"session"`
	AWS     AWSConfig     `mapstructure:"aws"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  string        `mapstructure:"allowed_origins"` // comma separated
}

// Origins splits the CORS origin list.
func (s ServerConfig) Origins() []string {
	var out []string
	for _, origin := range strings.Split(s.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			out = append(out, origin)
		}
	}
	return out
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CatalogConfig struct {
	Source string `mapstructure:"source"`
	Table  string `mapstructure:"table"`
}

type SwipeConfig struct {
	ExitDuration time.Duration `mapstructure:"exit_duration"`
}

type SessionConfig struct {
	IdleTTL       time.Duration `mapstructure:"idle_ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

type AWSConfig struct {
	Region        string        `mapstructure:"region"`
	Bucket        string        `mapstructure:"bucket"`
	PresignExpiry time.Duration `mapstructure:"presign_expiry"`
}

var defaults = map[string]interface{}{
	"server.port":             8080,
	"server.shutdown_timeout": 10 * time.Second,
	"server.allowed_origins":  "*",
	"logging.level":           "info",
	"logging.format":          "console",
	"catalog.source":          CatalogSourceEmbedded,
	"catalog.table":           "Profiles",
	"swipe.exit_duration":     260 * time.Millisecond,
	"session.idle_ttl":        30 * time.Minute,
	"session.sweep_interval":  time.Minute,
	"aws.region":              "",
	"aws.bucket":              "",
	"aws.presign_expiry":      5 * time.Minute,
}

// env names kept short where the deployment already used them
var envBindings = map[string]string{
	"server.port":             "PORT",
	"server.shutdown_timeout": "SHUTDOWN_TIMEOUT",
	"server.allowed_origins":  "CORS_ALLOWED_ORIGINS",
	"logging.level":           "LOG_LEVEL",
	"logging.format":          "LOG_FORMAT",
	"catalog.source":          "CATALOG_SOURCE",
	"catalog.table":           "CATALOG_TABLE",
	"swipe.exit_duration":     "SWIPE_EXIT_DURATION",
	"session.idle_ttl":        "SESSION_IDLE_TTL",
	"session.sweep_interval":  "SESSION_SWEEP_INTERVAL",
	"aws.region":              "AWS_REGION",
	"aws.bucket":              "S3_BUCKET_NAME",
	"aws.presign_expiry":      "S3_PRESIGN_EXPIRY",
}

// Load reads .env (if any), an optional config.yaml and the environment.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("error loading .env: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper applies defaults and env bindings to v and decodes the result.
func FromViper(v *viper.Viper) (*Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Catalog.Source = strings.ToLower(strings.TrimSpace(cfg.Catalog.Source))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate rejects values the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("port %d is out of range", c.Server.Port)
	}
	switch c.Catalog.Source {
	case CatalogSourceEmbedded:
	case CatalogSourceDynamoDB:
		if c.Catalog.Table == "" {
			return errors.New("catalog table is required for the dynamodb source")
		}
	default:
		return fmt.Errorf("unknown catalog source %q", c.Catalog.Source)
	}
	if c.Swipe.ExitDuration <= 0 {
		return errors.New("swipe exit duration must be positive")
	}
	if c.Session.IdleTTL <= 0 {
		return errors.New("session idle ttl must be positive")
	}
	if c.Session.SweepInterval <= 0 {
		return errors.New("session sweep interval must be positive")
	}
	return nil
}

// ImagesEnabled reports whether S3 presigning is configured.
func (c *Config) ImagesEnabled() bool {
	return c.AWS.Bucket != ""
}
