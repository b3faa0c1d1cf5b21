// Package config loads runtime settings from an optional YAML file and the
// environment. Environment variables use the upper-cased key with dots replaced by
// underscores, e.g. DATABASE_DSN or IMPORT_OVERWRITE_CLIENT_FIELDS.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP         HTTPConfig         `mapstructure:"http"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Import       ImportConfig       `mapstructure:"import"`
	Lock         LockConfig         `mapstructure:"lock"`
	Notification NotificationConfig `mapstructure:"notification"`
	Logging      LoggingConfig      `mapstructure:"logging"`
	Seed         SeedConfig         `mapstructure:"seed"`
}

type HTTPConfig struct {
	Port int `mapstructure:"port"`
}

type DatabaseConfig struct {
	// Driver is "sqlite" or "postgres".
	Driver      string `mapstructure:"driver"`
	DSN         string `mapstructure:"dsn"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type ImportConfig struct {
	// OverwriteClientFields lets an import replace non-empty client fields.
	OverwriteClientFields bool `mapstructure:"overwrite_client_fields"`
	// CatalogFallback promotes an unmatched proposal when its own catalog
	// dimensions already yield a volume.
	CatalogFallback bool          `mapstructure:"catalog_fallback"`
	LockTimeout     time.Duration `mapstructure:"lock_timeout"`
}

type LockConfig struct {
	// Backend is "memory" (single instance) or "dynamodb" (lease table).
	Backend string        `mapstructure:"backend"`
	Table   string        `mapstructure:"table"`
	TTL     time.Duration `mapstructure:"ttl"`
	// Region and Endpoint fall back to AWS_REGION and DYNAMODB_ENDPOINT.
	Region   string `mapstructure:"region"`
	Endpoint string `mapstructure:"endpoint"`
}

type NotificationConfig struct {
	// WebhookURL receives {"phone", "text"} posts. Empty disables notifications.
	WebhookURL string        `mapstructure:"webhook_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	// Recipients lists the phones notified per proposal status. PENDING_SHIPMENT
	// always goes to the responsible seller instead.
	Recipients map[string][]string `mapstructure:"recipients"`
}

// SeedConfig lists catalog rows created at startup when missing.
type SeedConfig struct {
	Carriers []string     `mapstructure:"carriers"`
	Boxes    []BoxSeed    `mapstructure:"boxes"`
	Sellers  []SellerSeed `mapstructure:"sellers"`
}

type BoxSeed struct {
	Name     string  `mapstructure:"name"`
	LengthCm float64 `mapstructure:"length_cm"`
	WidthCm  float64 `mapstructure:"width_cm"`
	HeightCm float64 `mapstructure:"height_cm"`
}

type SellerSeed struct {
	ID    int64  `mapstructure:"id"`
	Name  string `mapstructure:"name"`
	Phone string `mapstructure:"phone"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// NewViper returns a viper instance with defaults and environment binding. Callers
// may bind command-line flags to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("http.port", 8080)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "file:fluxo_propostas.db?_busy_timeout=5000")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("import.overwrite_client_fields", false)
	v.SetDefault("import.catalog_fallback", false)
	v.SetDefault("import.lock_timeout", 30*time.Second)
	v.SetDefault("lock.backend", "memory")
	v.SetDefault("lock.table", "proposal_import_locks")
	v.SetDefault("lock.ttl", 2*time.Minute)
	v.SetDefault("lock.region", "")
	v.SetDefault("lock.endpoint", "")
	v.SetDefault("notification.webhook_url", "")
	v.SetDefault("notification.timeout", 10*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configFile when given (or ./config.yaml when present) and decodes the
// merged settings.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("invalid database.driver %q (want sqlite or postgres)", c.Database.Driver)
	}
	if strings.TrimSpace(c.Database.DSN) == "" {
		return errors.New("database.dsn is required")
	}
	switch c.Lock.Backend {
	case "memory", "dynamodb":
	default:
		return fmt.Errorf("invalid lock.backend %q (want memory or dynamodb)", c.Lock.Backend)
	}
	if c.HTTP.Port <= 0 {
		return fmt.Errorf("invalid http.port %d", c.HTTP.Port)
	}
	return nil
}
