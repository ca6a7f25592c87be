package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // BILLING_TIMEZONE must resolve on hosts without zoneinfo.

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/dig"

	"github.com/davidbz/spendwatch/internal/cache/redis"
	"github.com/davidbz/spendwatch/internal/domain"
	"github.com/davidbz/spendwatch/internal/notify/discord"
	"github.com/davidbz/spendwatch/internal/observability"
	"github.com/davidbz/spendwatch/internal/source/bigquery"
)

const (
	// SinkDiscord delivers notifications to a Discord webhook.
	SinkDiscord = "discord"

	// SinkConsole prints notifications to the terminal.
	SinkConsole = "console"
)

// Config represents the notifier configuration.
type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Log      observability.LogConfig
	Billing  BillingConfig
	Display  DisplayConfig
	BigQuery bigquery.Config
	Discord  discord.Config
	Redis    redis.Config
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"120"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"false"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// BillingConfig selects the sink and the time zone that defines "today".
type BillingConfig struct {
	Timezone string `env:"BILLING_TIMEZONE" envDefault:"UTC"`
	Sink     string `env:"NOTIFY_SINK"      envDefault:"discord"`
}

// DisplayConfig controls currency conversion and payload size.
type DisplayConfig struct {
	ExchangeRate decimal.Decimal `env:"EXCHANGE_RATE"      envDefault:"150"`
	MaxFields    int             `env:"DISPLAY_MAX_FIELDS" envDefault:"25"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out

	Server   *ServerConfig
	CORS     *CORSConfig
	Log      *observability.LogConfig
	Billing  *BillingConfig
	Display  *DisplayConfig
	BigQuery *bigquery.Config
	Discord  *discord.Config
	Redis    *redis.Config
}

// Load loads environment files and parses configuration.
func Load() (*Config, error) {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConfiguration, err)
	}

	return &cfg, nil
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		Out:      dig.Out{},
		Server:   &cfg.Server,
		CORS:     &cfg.CORS,
		Log:      &cfg.Log,
		Billing:  &cfg.Billing,
		Display:  &cfg.Display,
		BigQuery: &cfg.BigQuery,
		Discord:  &cfg.Discord,
		Redis:    &cfg.Redis,
	}
}

// Validate reports every missing or malformed required setting. The error wraps
// domain.ErrConfiguration.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.BigQuery.BillingAccountID) == "" {
		problems = append(problems, "environment variable 'GCP_BILLING_ACCOUNT_ID' is not set")
	}
	if strings.TrimSpace(c.BigQuery.ProjectID) == "" {
		problems = append(problems, "environment variable 'BIGQUERY_PROJECT_ID' is not set")
	}
	if strings.TrimSpace(c.BigQuery.TableID) == "" {
		problems = append(problems, "environment variable 'BIGQUERY_TABLE_ID' is not set")
	}

	switch c.Billing.Sink {
	case SinkDiscord:
		if strings.TrimSpace(c.Discord.WebhookURL) == "" {
			problems = append(problems, "environment variable 'DISCORD_WEBHOOK_URL' is not set")
		}
	case SinkConsole:
	default:
		problems = append(problems, fmt.Sprintf("unsupported NOTIFY_SINK %q", c.Billing.Sink))
	}

	if _, err := c.Location(); err != nil {
		problems = append(problems, err.Error())
	}

	if !c.Display.ExchangeRate.IsPositive() {
		problems = append(problems, "EXCHANGE_RATE must be positive")
	}

	if len(problems) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", domain.ErrConfiguration, errors.New(strings.Join(problems, "; ")))
}

// Location returns the time zone named by BILLING_TIMEZONE.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Billing.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid BILLING_TIMEZONE %q: %w", c.Billing.Timezone, err)
	}
	return loc, nil
}
